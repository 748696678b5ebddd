package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	_ "study_hub/docs"
	"study_hub/internal/config"
	"study_hub/internal/handlers"
	"study_hub/internal/logger"
	"study_hub/internal/storage"
	"study_hub/internal/studyplan"
	"study_hub/internal/tasks"
	"study_hub/internal/ws"
)

// @Title						Study Hub: сообщества, события и самостоятельные занятия
// @version					1.0
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка конфигурации: ", err.Error())
	}
	if err := cfg.RequireJWT(); err != nil {
		log.Fatal("Ошибка конфигурации: ", err.Error())
	}

	lg := logger.New(cfg.LogLevel)

	db, err := storage.ConnectDatabase(cfg)
	if err != nil {
		lg.Fatal().Err(err).Msg("ошибка подключения к базе данных")
	}
	if err := storage.Migrate(db); err != nil {
		lg.Fatal().Err(err).Msg("ошибка при миграции")
	}

	// Без Redis сервис работает, но сводки запусков не сохраняются.
	var (
		recorder tasks.RunRecorder
		lastRun  handlers.LastRunReader
	)
	rdb, err := storage.InitRedis(context.Background(), cfg)
	if err != nil {
		lg.Warn().Err(err).Msg("redis недоступен, сводки запусков отключены")
	} else {
		cache := storage.NewRunCache(rdb)
		recorder = cache
		lastRun = cache
	}

	hub := ws.NewHub(lg)
	go hub.Run()
	defer hub.Stop()

	store := storage.NewStudyStore(db)
	expander := studyplan.NewExpander(store, lg,
		studyplan.WithLocation(cfg.Location),
		studyplan.WithNotifier(hub),
	)
	job := tasks.NewStudyJob(expander, recorder, lg)

	scheduler, err := tasks.InitScheduler(job, cfg.StudyCron, cfg.Location, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("ошибка запуска планировщика")
	}
	defer scheduler.Stop()

	r := handlers.SetupRouter(handlers.Deps{
		DB:            db,
		Runner:        job,
		LastRun:       lastRun,
		Events:        store,
		Hub:           hub,
		AccessSecret:  cfg.AccessSecret,
		RefreshSecret: cfg.RefreshSecret,
	})

	lg.Info().Str("addr", cfg.HTTPAddr).Msg("сервер запущен")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		lg.Fatal().Err(err).Msg("ошибка запуска сервера")
	}
}
