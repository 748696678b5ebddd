// Разовый запуск генерации индивидуальных занятий, без HTTP-сервера.
// Удобно для внешнего cron или ручной проверки.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"study_hub/internal/config"
	"study_hub/internal/logger"
	"study_hub/internal/response"
	"study_hub/internal/storage"
	"study_hub/internal/studyplan"
	"study_hub/internal/tasks"
)

func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Fprintln(os.Stderr, "Подключение к .env")
		if err := godotenv.Load(); err != nil {
			log.Println("Файл .env не найден, используются переменные окружения")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка конфигурации: ", err.Error())
	}

	// stdout занят итоговым JSON, логи уходят в stderr.
	lg := logger.NewWithWriter(os.Stderr, cfg.LogLevel)

	db, err := storage.ConnectDatabase(cfg)
	if err != nil {
		lg.Fatal().Err(err).Msg("ошибка подключения к базе данных")
	}
	if err := storage.Migrate(db); err != nil {
		lg.Fatal().Err(err).Msg("ошибка при миграции")
	}

	ctx := context.Background()

	var recorder tasks.RunRecorder
	if rdb, err := storage.InitRedis(ctx, cfg); err != nil {
		lg.Warn().Err(err).Msg("redis недоступен, сводка запуска не будет сохранена")
	} else {
		defer rdb.Close()
		recorder = storage.NewRunCache(rdb)
	}

	expander := studyplan.NewExpander(storage.NewStudyStore(db), lg, studyplan.WithLocation(cfg.Location))
	job := tasks.NewStudyJob(expander, recorder, lg)

	sum, err := job.Run(ctx)
	os.Exit(report(os.Stdout, sum, err))
}

// report печатает итог запуска одной строкой JSON и возвращает код выхода.
func report(out io.Writer, sum studyplan.Summary, runErr error) int {
	enc := json.NewEncoder(out)
	if runErr != nil {
		_ = enc.Encode(response.FunctionError{Error: runErr.Error()})
		return 1
	}
	_ = enc.Encode(response.FunctionResult{
		Message:           sum.Message(),
		TotalCreated:      sum.TotalCreated,
		ProfilesProcessed: sum.ProfilesProcessed,
	})
	return 0
}
