package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"study_hub/internal/response"
	"study_hub/internal/storage"
	"study_hub/internal/studyplan"
)

// StudyRunner — один запуск генерации занятий (tasks.StudyJob).
type StudyRunner interface {
	Run(ctx context.Context) (studyplan.Summary, error)
}

type LastRunReader interface {
	Last(ctx context.Context) (*storage.LastRun, error)
}

// setFunctionCORS выставляет разрешающие CORS-заголовки для serverless-функций.
func setFunctionCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
}

// CreateScheduledStudiesHandler запускает генерацию индивидуальных занятий на 7 дней вперёд.
// OPTIONS отвечает только CORS-заголовками, любой другой метод запускает генерацию.
// @Summary		Генерация индивидуальных занятий
// @Description	Разворачивает недельные расписания пользователей в события на 7 дней вперёд. Повторный запуск не создаёт дублей.
// @Tags			functions
// @Produce		json
// @Success		200	{object}	response.FunctionResult	"Итог генерации"
// @Failure		500	{object}	response.FunctionError	"Не удалось получить профили"
// @Router			/functions/v1/create-scheduled-studies [post]
func CreateScheduledStudiesHandler(runner StudyRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		setFunctionCORS(c)
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			return
		}

		sum, err := runner.Run(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.FunctionError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, response.FunctionResult{
			Message:           sum.Message(),
			TotalCreated:      sum.TotalCreated,
			ProfilesProcessed: sum.ProfilesProcessed,
		})
	}
}

// LastStudyRunHandler возвращает сводку последнего запуска генерации.
// @Summary		Последний запуск генерации
// @Tags			functions
// @Produce		json
// @Success		200	{object}	storage.LastRun
// @Failure		404	{object}	response.ErrorResponse	"Запусков ещё не было (NO_RUN)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка кэша (CACHE_ERROR)"
// @Router			/functions/v1/create-scheduled-studies/last-run [get]
func LastStudyRunHandler(reader LastRunReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		setFunctionCORS(c)
		run, err := reader.Last(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "CACHE_ERROR",
				Message: "Не удалось прочитать сводку запуска",
				Details: err.Error(),
			})
			return
		}
		if run == nil {
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "NO_RUN",
				Message: "Генерация ещё не запускалась",
			})
			return
		}
		c.JSON(http.StatusOK, run)
	}
}
