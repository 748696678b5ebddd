package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study_hub/internal/auth"
	"study_hub/internal/models"
	"study_hub/internal/storage"
	"study_hub/internal/studyplan"
)

var testAccessSecret = []byte("test-access")

type stubRunner struct {
	sum   studyplan.Summary
	err   error
	calls int
}

func (s *stubRunner) Run(ctx context.Context) (studyplan.Summary, error) {
	s.calls++
	return s.sum, s.err
}

type stubLastRun struct {
	run *storage.LastRun
	err error
}

func (s stubLastRun) Last(ctx context.Context) (*storage.LastRun, error) { return s.run, s.err }

type stubEvents struct {
	events []models.Event
	userID uuid.UUID
}

func (s *stubEvents) UpcomingEvents(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]models.Event, error) {
	s.userID = userID
	return s.events, nil
}

func do(t *testing.T, d Deps, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if d.AccessSecret == nil {
		d.AccessSecret = testAccessSecret
	}
	r := SetupRouter(d)
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, userID uuid.UUID) map[string]string {
	t.Helper()
	token, err := auth.GenerateToken(userID, time.Minute, testAccessSecret)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestCreateScheduledStudiesPreflight(t *testing.T) {
	runner := &stubRunner{}
	w := do(t, Deps{Runner: runner}, http.MethodOptions, "/functions/v1/create-scheduled-studies", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "apikey")
	assert.Zero(t, runner.calls, "preflight не запускает генерацию")
}

func TestFunctionsBrowserPreflight(t *testing.T) {
	runner := &stubRunner{}
	d := Deps{Runner: runner, LastRun: stubLastRun{}}
	header := map[string]string{
		"Origin":                         "https://app.example.com",
		"Access-Control-Request-Method":  "POST",
		"Access-Control-Request-Headers": "authorization, x-client-info, apikey, content-type",
	}

	for _, path := range []string{
		"/functions/v1/create-scheduled-studies",
		"/functions/v1/create-scheduled-studies/last-run",
		"/functions/v1/generate-invite-code",
	} {
		w := do(t, d, http.MethodOptions, path, "", header)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, w.Body.String(), path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Equal(t, "authorization, x-client-info, apikey, content-type",
			w.Header().Get("Access-Control-Allow-Headers"), path)
	}
	assert.Zero(t, runner.calls, "preflight не запускает генерацию")

	// Остальное API по-прежнему обслуживает cors-middleware.
	w := do(t, d, http.MethodOptions, "/auth/login", "", header)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCreateScheduledStudiesAnyMethodRuns(t *testing.T) {
	runner := &stubRunner{sum: studyplan.Summary{ProfilesProcessed: 3, TotalCreated: 5}}

	for _, method := range []string{http.MethodPost, http.MethodGet, http.MethodPut} {
		w := do(t, Deps{Runner: runner}, method, "/functions/v1/create-scheduled-studies", "", nil)
		require.Equal(t, http.StatusOK, w.Code, method)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, studyplan.MessageScheduledDone, body["message"])
		assert.EqualValues(t, 5, body["totalCreated"])
		assert.EqualValues(t, 3, body["profilesProcessed"])
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	}
	assert.Equal(t, 3, runner.calls)
}

func TestCreateScheduledStudiesNoProfiles(t *testing.T) {
	w := do(t, Deps{Runner: &stubRunner{}}, http.MethodPost, "/functions/v1/create-scheduled-studies", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"No profiles with study schedules found","totalCreated":0,"profilesProcessed":0}`, w.Body.String())
}

func TestCreateScheduledStudiesFatalError(t *testing.T) {
	runner := &stubRunner{err: errors.New("не удалось получить профили с расписанием: timeout")}
	w := do(t, Deps{Runner: runner}, http.MethodPost, "/functions/v1/create-scheduled-studies", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"не удалось получить профили с расписанием: timeout"}`, w.Body.String())
}

func TestLastStudyRun(t *testing.T) {
	d := Deps{Runner: &stubRunner{}, LastRun: stubLastRun{}}
	w := do(t, d, http.MethodGet, "/functions/v1/create-scheduled-studies/last-run", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NO_RUN")

	d.LastRun = stubLastRun{run: &storage.LastRun{Message: "ok", TotalCreated: 2}}
	w = do(t, d, http.MethodGet, "/functions/v1/create-scheduled-studies/last-run", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalCreated":2`)

	d.LastRun = stubLastRun{err: errors.New("redis down")}
	w = do(t, d, http.MethodGet, "/functions/v1/create-scheduled-studies/last-run", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewInviteCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := NewInviteCode()
		require.NoError(t, err)
		assert.Len(t, code, inviteCodeLength)
		for _, ch := range code {
			assert.Contains(t, inviteAlphabet, string(ch))
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 45)
}

func TestGenerateInviteCodeRequiresAuthAndBody(t *testing.T) {
	d := Deps{Runner: &stubRunner{}}

	w := do(t, d, http.MethodPost, "/functions/v1/generate-invite-code", `{}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, d, http.MethodPost, "/functions/v1/generate-invite-code", `{}`, bearer(t, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")

	w = do(t, d, http.MethodOptions, "/functions/v1/generate-invite-code", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
