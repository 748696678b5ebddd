package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"study_hub/internal/config"
	"study_hub/internal/models"
)

// connectTestingDatabase подключается к тестовой БД из TEST_DB_* или пропускает тест.
func connectTestingDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST не задан, интеграционный тест пропущен")
	}
	cfg := &config.Config{
		DBHost:     host,
		DBPort:     os.Getenv("TEST_DB_PORT"),
		DBUser:     os.Getenv("TEST_DB_USER"),
		DBPassword: os.Getenv("TEST_DB_PASSWORD"),
		DBName:     os.Getenv("TEST_DB_NAME"),
		DBSSLMode:  "disable",
	}
	db, err := ConnectDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Exec("TRUNCATE TABLE profiles, communities, community_members, events, invite_codes CASCADE;").Error)
	return db
}

func TestStudyStore(t *testing.T) {
	db := connectTestingDatabase(t)
	ctx := context.Background()
	store := NewStudyStore(db)

	withSchedule := models.Profile{Email: "a@example.com", FullName: "A", PasswordHash: "x",
		StudySchedule: datatypes.JSON(`[{"dayOfWeek":1,"time":"10:00"}]`)}
	withoutSchedule := models.Profile{Email: "b@example.com", FullName: "B", PasswordHash: "x"}
	emptySchedule := models.Profile{Email: "c@example.com", FullName: "C", PasswordHash: "x",
		StudySchedule: datatypes.JSON(`[ ]`)}
	nullSchedule := models.Profile{Email: "d@example.com", FullName: "D", PasswordHash: "x",
		StudySchedule: datatypes.JSON(`null`)}
	for _, p := range []*models.Profile{&withSchedule, &withoutSchedule, &emptySchedule, &nullSchedule} {
		require.NoError(t, db.Create(p).Error)
	}

	profiles, err := store.ProfilesWithSchedule(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, withSchedule.ID, profiles[0].ID)

	_, ok, err := store.FirstCommunityID(ctx, withSchedule.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	first := models.CommunityMember{CommunityID: uuid.New(), UserID: withSchedule.ID, Role: models.RoleMember,
		CreatedAt: time.Now().Add(-time.Hour)}
	second := models.CommunityMember{CommunityID: uuid.New(), UserID: withSchedule.ID, Role: models.RoleAdmin}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	communityID, ok, err := store.FirstCommunityID(ctx, withSchedule.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, first.CommunityID, communityID)

	at := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	exists, err := store.StudyEventExists(ctx, withSchedule.ID, at, at.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.InsertEvents(ctx, []models.Event{{
		Title: "Individual Study", EventDate: at, DurationMinutes: 60,
		EventType: models.EventTypeIndividualStudy, CreatedBy: withSchedule.ID, CommunityID: communityID,
	}}))

	exists, err = store.StudyEventExists(ctx, withSchedule.ID, at, at.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, exists)

	// окно полуоткрытое: следующая минута уже свободна
	exists, err = store.StudyEventExists(ctx, withSchedule.ID, at.Add(time.Minute), at.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, exists)

	upcoming, err := store.UpcomingEvents(ctx, withSchedule.ID, time.Now(), 10)
	require.NoError(t, err)
	assert.Len(t, upcoming, 1)
}

func TestRunCache(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR не задан, интеграционный тест пропущен")
	}
	ctx := context.Background()
	client, err := InitRedis(ctx, &config.Config{RedisAddr: addr})
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.Del(ctx, lastRunKey).Err())

	cache := NewRunCache(client)
	last, err := cache.Last(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	run := LastRun{Message: "ok", TotalCreated: 3, ProfilesProcessed: 2, FinishedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, cache.Save(ctx, run))

	last, err = cache.Last(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 3, last.TotalCreated)
	assert.True(t, run.FinishedAt.Equal(last.FinishedAt))
}
