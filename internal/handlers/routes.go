package handlers

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"study_hub/internal/auth"
	"study_hub/internal/ws"
)

const functionsPrefix = "/functions/v1"

// Deps — зависимости HTTP-слоя.
type Deps struct {
	DB            *gorm.DB
	Runner        StudyRunner
	LastRun       LastRunReader
	Events        EventLister
	Hub           *ws.Hub
	AccessSecret  []byte
	RefreshSecret []byte
}

// SetupRouter регистрирует все маршруты сервиса.
func SetupRouter(d Deps) *gin.Engine {
	RegisterValidators()

	r := gin.Default()

	apiCORS := cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		ExposeHeaders: []string{"Content-Length"},
	})
	// Функции сами выставляют CORS-заголовки и отвечают на preflight.
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, functionsPrefix+"/") {
			c.Next()
			return
		}
		apiCORS(c)
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	functions := r.Group(functionsPrefix)
	{
		functions.Any("/create-scheduled-studies", CreateScheduledStudiesHandler(d.Runner))
		if d.LastRun != nil {
			functions.OPTIONS("/create-scheduled-studies/last-run", FunctionPreflight)
			functions.GET("/create-scheduled-studies/last-run", LastStudyRunHandler(d.LastRun))
		}
		functions.OPTIONS("/generate-invite-code", FunctionPreflight)
		functions.POST("/generate-invite-code", auth.AuthMiddleware(d.AccessSecret), GenerateInviteCodeHandler(d.DB))
	}

	authHandler := &AuthHandler{DB: d.DB, AccessSecret: d.AccessSecret, RefreshSecret: d.RefreshSecret}
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/refresh", authHandler.RefreshToken)
	}

	profileHandler := &ProfileHandler{DB: d.DB, Events: d.Events}
	api := r.Group("/api", auth.AuthMiddleware(d.AccessSecret))
	{
		api.GET("/profile/study-schedule", profileHandler.GetStudySchedule)
		api.PUT("/profile/study-schedule", profileHandler.UpdateStudySchedule)
		api.GET("/profile/events", profileHandler.GetUpcomingEvents)
		if d.Hub != nil {
			api.GET("/events/ws", ws.CalendarWebSocketHandler(d.Hub))
		}
	}

	return r
}
