package main

import (
	"errors"
	"time"

	"github.com/dinesh-manogaran/Career-Compass/internal/config"
	"github.com/dinesh-manogaran/Career-Compass/internal/domain/fiber/handler"
	"github.com/dinesh-manogaran/Career-Compass/internal/logger"
	"github.com/dinesh-manogaran/Career-Compass/internal/middleware"
	"github.com/dinesh-manogaran/Career-Compass/internal/service"
	"github.com/dinesh-manogaran/Career-Compass/internal/session"
	"github.com/dinesh-manogaran/Career-Compass/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	logger.Init(appConfig.Env)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// Two 5 MB uploads plus multipart overhead must reach the handler so
		// the slot-specific size check can answer, not a bare 413.
		BodyLimit: 16 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	store := session.NewFileStore(config.LoadSessionConfig().FilePath)
	compass := service.NewCompassService()

	authCtrl := usecase.NewAuthController(compass, store)
	matchCtrl := usecase.NewMatchController(compass, store)
	queryCtrl := usecase.NewQueryController(compass)

	handler.NewAuthHandler(authCtrl, store).RegisterRoutes(app)
	handler.NewDashboardHandler(matchCtrl, queryCtrl, store).RegisterRoutes(app)

	log.Info().
		Str("port", appConfig.Port).
		Str("compass_api", config.LoadCompassConfig().BaseURL).
		Msg("Career Compass gateway running")
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
