package handlers

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"study_hub/internal/models"
	"study_hub/internal/response"
)

const (
	inviteAlphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	inviteCodeLength  = 8
	inviteTTL         = 7 * 24 * time.Hour
	inviteMaxAttempts = 5
)

type GenerateInviteCodeRequest struct {
	CommunityID uuid.UUID `json:"community_id" binding:"required"`
}

// NewInviteCode генерирует короткий код без похожих символов (0/O, 1/I).
func NewInviteCode() (string, error) {
	limit := big.NewInt(int64(len(inviteAlphabet)))
	code := make([]byte, inviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "генерация инвайт-кода")
		}
		code[i] = inviteAlphabet[n.Int64()]
	}
	return string(code), nil
}

// GenerateInviteCodeHandler выпускает инвайт-код сообщества. Доступно владельцу и администраторам.
// @Summary		Выпуск инвайт-кода
// @Tags			functions
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			request	body		GenerateInviteCodeRequest		true	"Сообщество"
// @Success		200		{object}	response.InviteCodeResponse
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		401		{object}	response.ErrorResponse	"Нет токена (NO_AUTH_HEADER, INVALID_TOKEN)"
// @Failure		403		{object}	response.ErrorResponse	"Нет прав (FORBIDDEN)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR, CODE_GENERATION_ERROR)"
// @Router			/functions/v1/generate-invite-code [post]
func GenerateInviteCodeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		setFunctionCORS(c)

		var req GenerateInviteCodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "Ошибка валидации данных",
				Details: err.Error(),
			})
			return
		}

		userID, err := uuid.Parse(c.GetString("userID"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Неверный или просроченный токен",
			})
			return
		}

		ctx := c.Request.Context()
		var member models.CommunityMember
		res := db.WithContext(ctx).
			Where("community_id = ? AND user_id = ?", req.CommunityID, userID).
			Limit(1).
			Find(&member)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "DB_ERROR",
				Message: "Ошибка проверки членства",
			})
			return
		}
		if res.RowsAffected == 0 || !member.CanIssueInvites() {
			c.JSON(http.StatusForbidden, response.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "Только владелец или администратор может создавать инвайт-коды",
			})
			return
		}

		invite := models.InviteCode{
			CommunityID: req.CommunityID,
			CreatedBy:   userID,
			ExpiresAt:   time.Now().Add(inviteTTL),
		}
		for attempt := 0; attempt < inviteMaxAttempts; attempt++ {
			invite.ID = uuid.Nil
			invite.Code, err = NewInviteCode()
			if err != nil {
				break
			}
			err = db.WithContext(ctx).Create(&invite).Error
			if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
				break
			}
		}
		if err != nil {
			code := "DB_ERROR"
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				code = "CODE_GENERATION_ERROR"
			}
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    code,
				Message: "Не удалось создать инвайт-код",
			})
			return
		}

		c.JSON(http.StatusOK, response.InviteCodeResponse{
			Code:      invite.Code,
			ExpiresAt: invite.ExpiresAt,
		})
	}
}

// FunctionPreflight отвечает на CORS preflight для функций, закрытых авторизацией.
func FunctionPreflight(c *gin.Context) {
	setFunctionCORS(c)
	c.Status(http.StatusOK)
}
