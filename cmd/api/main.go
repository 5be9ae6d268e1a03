package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jsjj10002/dataventure/internal/config"
	"github.com/jsjj10002/dataventure/internal/handlers"
	"github.com/jsjj10002/dataventure/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize Gemini AI (the one process-wide client, shared read-only)
	ctx := context.Background()
	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Embedding.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	embeddingService := services.NewEmbeddingService(geminiService, cfg.Embedding.Dim)
	depthAnalyzer := services.NewDepthAnalyzer(cfg.Interview.MaxExchanges, cfg.Interview.MinExchanges)
	questionService := services.NewQuestionService(geminiService, depthAnalyzer)
	answerAnalyzer := services.NewAnswerAnalyzer(geminiService)
	evaluationService := services.NewEvaluationService(answerAnalyzer, geminiService)
	matchingService := services.NewMatchingService(embeddingService, geminiService)
	transcriptionService := services.NewTranscriptionService(geminiService, cfg.Audio.DefaultLanguage)
	resumeParser := services.NewResumeParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(questionService)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationService)
	matchingHandler := handlers.NewMatchingHandler(matchingService)
	transcribeHandler := handlers.NewTranscribeHandler(
		transcriptionService,
		cfg.Audio.MaxRealtimeSize,
		cfg.Audio.DefaultLanguage,
	)
	resumeHandler := handlers.NewResumeHandler(resumeParser)
	healthHandler := handlers.NewHealthHandler(cfg)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Interview Engine",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    25 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	ai := app.Group("/internal/ai")
	ai.Post("/generate-question", questionHandler.HandleGenerateQuestion)
	ai.Post("/generate-question-stream", questionHandler.HandleGenerateQuestionStream)
	ai.Post("/generate-evaluation", evaluationHandler.HandleGenerateEvaluation)
	ai.Post("/calculate-match", matchingHandler.HandleCalculateMatch)
	ai.Post("/transcribe", transcribeHandler.HandleTranscribe)
	ai.Post("/transcribe-realtime", transcribeHandler.HandleTranscribeRealtime)
	ai.Post("/parse-resume", resumeHandler.HandleParseResume)

	app.Get("/", healthHandler.HandleRoot)
	app.Get("/health", healthHandler.HandleHealth)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
