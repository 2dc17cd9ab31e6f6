package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"trainingdiary/docs"
	"trainingdiary/internal/authn"
	"trainingdiary/internal/config"
	"trainingdiary/internal/handler"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/validation"
)

// Register wires routes and middleware. requireAuth guards every user-scoped route.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log logging.Logger,
	requireAuth echo.MiddlewareFunc,
	infoHandler *handler.InfoHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	trainingHandler *handler.TrainingHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.CORSOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, authn.HeaderAuth},
		ExposeHeaders: []string{authn.HeaderAuth},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validation.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/", infoHandler.Info)
	api.POST("/users", authHandler.Register)
	api.POST("/users/login", authHandler.Login)

	// Secured routes (require x-auth token)
	users := api.Group("/users/me", requireAuth)
	users.GET("", userHandler.Me)
	users.DELETE("/token", authHandler.Logout)

	trainings := api.Group("/trainings", requireAuth)
	trainings.POST("", trainingHandler.CreateTraining)
	trainings.GET("", trainingHandler.ListTrainings)
	trainings.GET("/:trainingId", trainingHandler.GetTraining)
	trainings.DELETE("/:trainingId", trainingHandler.DeleteTraining)
	trainings.PATCH("/:trainingId", trainingHandler.UpdateTraining)

	trainings.POST("/:trainingId/exercises", trainingHandler.CreateExercise)
	trainings.DELETE("/:trainingId/exercises/:exerciseId", trainingHandler.DeleteExercise)
	trainings.PATCH("/:trainingId/exercises/:exerciseId", trainingHandler.UpdateExercise)

	trainings.POST("/:trainingId/exercises/:exerciseId/series", trainingHandler.CreateSeries)
	trainings.DELETE("/:trainingId/exercises/:exerciseId/series/:seriesId", trainingHandler.DeleteSeries)
	trainings.PATCH("/:trainingId/exercises/:exerciseId/series/:seriesId", trainingHandler.UpdateSeries)
}

// requestLogger writes one structured line per request.
func requestLogger(log logging.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				log.Warn(c.Request().Context(), "request", append(args, "error", v.Error)...)
				return nil
			}
			log.Info(c.Request().Context(), "request", args...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validation.Validator
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
