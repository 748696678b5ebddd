package response

import "time"

// SuccessResponse представляет успешный ответ API
type SuccessResponse struct {
	Message string `json:"message" example:"Операция успешно выполнена"`
}

// ErrorResponse представляет ответ с ошибкой API
type ErrorResponse struct {
	// Код ошибки для программной обработки
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Человекочитаемое сообщение об ошибке
	// example: Ошибка валидации данных
	Message string `json:"message"`

	// Дополнительные детали об ошибке (опционально)
	// example: поле dayOfWeek должно быть от 0 до 6
	Details string `json:"details,omitempty"`
}

// TokenResponse представляет ответ с токенами авторизации
type TokenResponse struct {
	// JWT токен для доступа к защищенным эндпоинтам
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// JWT токен для обновления access токена
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}

// FunctionResult — ответ функции create-scheduled-studies
type FunctionResult struct {
	Message           string `json:"message" example:"Scheduled studies created successfully"`
	TotalCreated      int    `json:"totalCreated" example:"12"`
	ProfilesProcessed int    `json:"profilesProcessed" example:"5"`
}

// FunctionError — ответ функции при фатальной ошибке
type FunctionError struct {
	Error string `json:"error"`
}

// InviteCodeResponse — выпущенный инвайт-код сообщества
type InviteCodeResponse struct {
	Code      string    `json:"code" example:"K7QX2M9P"`
	ExpiresAt time.Time `json:"expires_at"`
}
