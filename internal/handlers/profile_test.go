package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study_hub/internal/models"
)

func TestUpdateStudyScheduleValidation(t *testing.T) {
	d := Deps{Runner: &stubRunner{}}
	headers := bearer(t, uuid.New())

	cases := map[string]string{
		"день недели вне диапазона": `{"rules":[{"dayOfWeek":7,"time":"10:00"}]}`,
		"нет дня недели":            `{"rules":[{"time":"10:00"}]}`,
		"неверное время":            `{"rules":[{"dayOfWeek":1,"time":"25:00"}]}`,
		"время не в формате HH:MM":  `{"rules":[{"dayOfWeek":1,"time":"10am"}]}`,
		"не JSON": `rules`,
	}
	for name, body := range cases {
		w := do(t, d, http.MethodPut, "/api/profile/study-schedule", body, headers)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR", name)
	}
}

func TestProfileRoutesRequireToken(t *testing.T) {
	d := Deps{Runner: &stubRunner{}}
	for _, path := range []string{"/api/profile/study-schedule", "/api/profile/events"} {
		w := do(t, d, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestGetUpcomingEvents(t *testing.T) {
	userID := uuid.New()
	ev := models.Event{Title: "Individual Study", EventDate: time.Now().Add(time.Hour), CreatedBy: userID}
	ev.ID = uuid.New()
	lister := &stubEvents{events: []models.Event{ev}}

	w := do(t, Deps{Runner: &stubRunner{}, Events: lister}, http.MethodGet, "/api/profile/events", "", bearer(t, userID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, lister.userID)

	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)

	lister.events = nil
	w = do(t, Deps{Runner: &stubRunner{}, Events: lister}, http.MethodGet, "/api/profile/events", "", bearer(t, userID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
