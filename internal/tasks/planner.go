package tasks

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"study_hub/internal/storage"
	"study_hub/internal/studyplan"
)

// Expander — один проход генерации занятий.
type Expander interface {
	Run(ctx context.Context) (studyplan.Summary, error)
}

// RunRecorder сохраняет сводку запуска (Redis).
type RunRecorder interface {
	Save(ctx context.Context, run storage.LastRun) error
}

// StudyJob запускает генерацию, пишет итог в лог и сохраняет сводку.
type StudyJob struct {
	expander Expander
	recorder RunRecorder
	log      zerolog.Logger
	timeout  time.Duration
}

func NewStudyJob(expander Expander, recorder RunRecorder, log zerolog.Logger) *StudyJob {
	return &StudyJob{
		expander: expander,
		recorder: recorder,
		log:      log.With().Str("job", "create-scheduled-studies").Logger(),
		timeout:  5 * time.Minute,
	}
}

func (j *StudyJob) Run(ctx context.Context) (studyplan.Summary, error) {
	started := time.Now()
	sum, err := j.expander.Run(ctx)

	run := storage.LastRun{
		Message:           sum.Message(),
		TotalCreated:      sum.TotalCreated,
		ProfilesProcessed: sum.ProfilesProcessed,
		Skipped:           sum.Skipped,
		Failed:            sum.Failed,
		StartedAt:         started,
		FinishedAt:        time.Now(),
	}
	if err != nil {
		run.Message = ""
		run.Error = err.Error()
		j.log.Error().Err(err).Msg("генерация занятий прервана")
	} else {
		j.log.Info().
			Int("total_created", sum.TotalCreated).
			Int("profiles_processed", sum.ProfilesProcessed).
			Int("skipped", sum.Skipped).
			Int("failed", sum.Failed).
			Dur("took", run.FinishedAt.Sub(started)).
			Msg("генерация занятий завершена")
	}

	if j.recorder != nil {
		if rerr := j.recorder.Save(ctx, run); rerr != nil {
			j.log.Warn().Err(rerr).Msg("не удалось сохранить сводку запуска")
		}
	}

	return sum, err
}

// runScheduled — обёртка для cron: свой контекст с таймаутом, результат только в лог.
func (j *StudyJob) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	_, _ = j.Run(ctx)
}

// InitScheduler регистрирует ежедневную генерацию занятий и запускает cron.
// spec — расписание с секундами, например "0 5 0 * * *".
func InitScheduler(job *StudyJob, spec string, loc *time.Location, log zerolog.Logger) (*cron.Cron, error) {
	if loc == nil {
		loc = time.Local
	}
	c := cron.New(cron.WithSeconds(), cron.WithLocation(loc))

	if _, err := c.AddFunc(spec, job.runScheduled); err != nil {
		return nil, errors.Wrapf(err, "неверное расписание cron %q", spec)
	}

	c.Start()
	log.Info().Str("spec", spec).Str("location", loc.String()).Msg("cron-планировщик запущен")
	return c, nil
}
