package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
	config "github.com/tarnowskisean-beep/cook-book/configs"
	"github.com/tarnowskisean-beep/cook-book/internal/api/handlers"
	job "github.com/tarnowskisean-beep/cook-book/internal/jobs"
	"github.com/tarnowskisean-beep/cook-book/internal/queue"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	personaRepo := repository.NewPersonaRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	itemRepo := repository.NewItemRepository(db)
	contentRepo := repository.NewContentRepository(db)
	postRepo := repository.NewPostRepository(db)
	postingHistoryRepo := repository.NewPostingHistoryRepository(db)
	mediaAssetRepo := repository.NewMediaAssetRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)

	storageService := service.NewStorageService(*cfg)
	completionService := service.NewCompletionService(*cfg)
	renderService := service.NewRenderService(*cfg)
	generationService := service.NewGenerationService(itemRepo, projectRepo, personaRepo, completionService, renderService)
	contentService := service.NewContentService(contentRepo, postRepo, itemRepo)
	calendarService := service.NewCalendarService(postRepo)
	personaService := service.NewPersonaService(personaRepo)
	projectService := service.NewProjectService(projectRepo)
	itemService := service.NewItemService(itemRepo, projectRepo)
	socialService := service.NewSocialService()
	connectionService := service.NewConnectionService(socialAccountRepo)
	assetService := service.NewAssetService(mediaAssetRepo, personaService, storageService)

	api := app.Group("/api")

	generate := handlers.NewGenerateHandler(generationService, renderService)
	api.Post("/generate/script", generate.GenerateScript)
	api.Post("/generate/media-prompt", generate.GenerateMediaPrompt)
	api.Post("/generate/image", generate.RenderImage)
	api.Post("/generate/video", generate.SubmitVideo)
	api.Get("/generate/video/status", generate.RenderStatus)

	content := handlers.NewContentHandler(contentService)
	api.Post("/contents/save", content.SaveContent)
	api.Get("/contents", content.ListContents)
	api.Post("/contents/script", content.UpdateScript)
	api.Post("/contents/media", content.UpdateMedia)

	post := handlers.NewPostHandler(contentService, client)
	api.Post("/posts/schedule", post.SchedulePost)
	api.Post("/posts/cancel", post.CancelPost)

	calendar := handlers.NewCalendarHandler(calendarService)
	api.Get("/calendar", calendar.Calendar)
	api.Get("/queue", calendar.Queue)

	project := handlers.NewProjectHandler(projectService)
	api.Post("/projects", project.CreateProject)
	api.Get("/projects", project.ListProjects)
	api.Get("/projects/:id", project.GetProject)
	api.Put("/projects/:id", project.UpdateProject)
	api.Delete("/projects/:id", project.DeleteProject)

	item := handlers.NewItemHandler(itemService)
	api.Post("/items", item.CreateItem)
	api.Get("/items", item.ListItems)
	api.Get("/items/:id", item.GetItem)
	api.Put("/items/:id", item.UpdateItem)
	api.Delete("/items/:id", item.DeleteItem)

	persona := handlers.NewPersonaHandler(personaService, assetService)
	api.Get("/personas", persona.ListPersonas)
	api.Get("/personas/:id", persona.GetPersona)
	api.Post("/personas/manage", persona.ManagePersona)
	api.Post("/personas/settings", persona.UpdateSettings)
	api.Post("/personas/optimize", persona.Optimize)
	api.Post("/personas/:id/avatar", persona.UploadAvatar)

	connection := handlers.NewConnectionHandler(connectionService)
	api.Post("/connections/toggle", connection.ToggleConnection)
	api.Get("/connections", connection.ListConnections)

	// cron jobs
	metricsRefreshJob := job.NewMetricsRefreshJob(postingHistoryRepo, contentRepo, socialService)

	//queue
	queueW := queue.NewQueue(postRepo, contentRepo, postingHistoryRepo, socialService)

	c := cron.New()
	c.AddFunc("@every 01h00m00s", metricsRefreshJob.RefreshMetrics)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeDeliverPost, queueW.HandleDeliverPostTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
