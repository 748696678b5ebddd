package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"study_hub/internal/models"
	"study_hub/internal/response"
	"study_hub/internal/studyplan"
)

const upcomingEventsLimit = 100

// RegisterValidators добавляет собственные теги (hhmm) в валидатор gin.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		studyplan.RegisterValidations(v)
	}
}

type EventLister interface {
	UpcomingEvents(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]models.Event, error)
}

type ProfileHandler struct {
	DB     *gorm.DB
	Events EventLister
}

type StudyRuleRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" binding:"required,min=0,max=6" example:"1"`
	Time      string `json:"time" binding:"required,hhmm" example:"18:30"`
	Topic     string `json:"topic" binding:"max=200" example:"Scales"`
}

type UpdateStudyScheduleRequest struct {
	Rules []StudyRuleRequest `json:"rules" binding:"dive"`
}

type StudyScheduleResponse struct {
	Rules   []studyplan.StudyRule `json:"rules"`
	Invalid int                   `json:"invalid"`
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Code:    "INVALID_TOKEN",
			Message: "Неверный или просроченный токен",
		})
		return uuid.Nil, false
	}
	return userID, true
}

// GetStudySchedule godoc
// @Summary		Расписание самостоятельных занятий
// @Tags			profile
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	StudyScheduleResponse
// @Failure		404	{object}	response.ErrorResponse	"Профиль не найден (USER_NOT_FOUND)"
// @Router			/api/profile/study-schedule [get]
func (h *ProfileHandler) GetStudySchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var profile models.Profile
	if err := h.DB.WithContext(c.Request.Context()).First(&profile, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "USER_NOT_FOUND",
			Message: "Профиль не найден",
		})
		return
	}

	rules, invalid, _ := studyplan.ParseSchedule(profile.StudySchedule)
	if rules == nil {
		rules = []studyplan.StudyRule{}
	}
	c.JSON(http.StatusOK, StudyScheduleResponse{Rules: rules, Invalid: invalid})
}

// UpdateStudySchedule godoc
// @Summary		Замена расписания самостоятельных занятий
// @Description	Полностью заменяет правила. Новые занятия появятся при следующем запуске генерации.
// @Tags			profile
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			request	body		UpdateStudyScheduleRequest	true	"Правила"
// @Success		200		{object}	StudyScheduleResponse
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/profile/study-schedule [put]
func (h *ProfileHandler) UpdateStudySchedule(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateStudyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	rules := make([]studyplan.StudyRule, 0, len(req.Rules))
	for _, r := range req.Rules {
		rules = append(rules, studyplan.StudyRule{
			DayOfWeek: *r.DayOfWeek,
			Time:      strings.TrimSpace(r.Time),
			Topic:     strings.TrimSpace(r.Topic),
		})
	}
	raw, err := studyplan.EncodeSchedule(rules)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "ENCODE_ERROR",
			Message: "Ошибка сохранения расписания",
		})
		return
	}

	res := h.DB.WithContext(c.Request.Context()).
		Model(&models.Profile{}).
		Where("id = ?", userID).
		Update("study_schedule", datatypes.JSON(raw))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка сохранения расписания",
		})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "USER_NOT_FOUND",
			Message: "Профиль не найден",
		})
		return
	}

	c.JSON(http.StatusOK, StudyScheduleResponse{Rules: rules})
}

// GetUpcomingEvents godoc
// @Summary		Ближайшие события пользователя
// @Tags			profile
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.Event
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/profile/events [get]
func (h *ProfileHandler) GetUpcomingEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	events, err := h.Events.UpcomingEvents(c.Request.Context(), userID, time.Now(), upcomingEventsLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка получения событий",
			Details: err.Error(),
		})
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}
