package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sitegen_server/api"
	"sitegen_server/config"
	internalapi "sitegen_server/internal/api"
	"sitegen_server/internal/design"
	"sitegen_server/internal/images"
	"sitegen_server/internal/llm"
	"sitegen_server/internal/page"
	"sitegen_server/internal/session"
	"sitegen_server/internal/site"
)

func main() {
	// --- Load .env file ---
	// This loads environment variables from a .env file in the current directory.
	// It must happen BEFORE viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".") // Load from config.yaml or env vars
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Logger ---
	var logger *zap.Logger
	if cfg.AppEnv == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- LLM Providers ---
	// Every provider is constructed; unconfigured ones stay in the chain but
	// report themselves unavailable and are skipped at call time.
	gemini, err := llm.NewGemini(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("failed to initialize gemini provider", zap.Error(err))
	}
	providersByName := map[string]llm.Provider{
		"openai":    llm.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel),
		"groq":      llm.NewGroq(cfg.GroqKey, cfg.GroqModel),
		"gemini":    gemini,
		"anthropic": llm.NewAnthropic(cfg.AnthropicKey, cfg.AnthropicModel),
		"ollama":    llm.NewOllama(cfg.OllamaBaseURL, cfg.OllamaModel),
	}

	var ordered []llm.Provider
	for _, name := range llm.Order(cfg.LLMProvider) {
		ordered = append(ordered, providersByName[name])
	}
	chain := llm.NewChain(logger, ordered...)
	logger.Info("llm provider chain configured",
		zap.String("preference", cfg.LLMProvider), zap.Strings("order", chain.Providers()))

	// --- Design Catalogs ---
	presets := design.DefaultStylePresets()
	if cfg.StylePresetsPath != "" {
		loaded, err := design.LoadStylePresets(cfg.StylePresetsPath)
		if err != nil {
			logger.Warn("failed to load style presets file, using defaults",
				zap.String("path", cfg.StylePresetsPath), zap.Error(err))
		} else {
			presets = loaded
		}
	}
	library := design.DefaultComponentLibrary()
	if cfg.ComponentLibraryPath != "" {
		loaded, err := design.LoadComponentLibrary(cfg.ComponentLibraryPath)
		if err != nil {
			logger.Warn("failed to load component library file, using defaults",
				zap.String("path", cfg.ComponentLibraryPath), zap.Error(err))
		} else {
			library = loaded
		}
	}
	enhancements := design.DefaultEnhancements()

	// --- Image Sourcers ---
	// Tried in order: FLUX, then Stable Diffusion, then Unsplash stock photos.
	// When every source fails the filler falls back to placeholder URLs.
	filler := page.NewFiller(logger,
		images.NewFlux(cfg.HFToken),
		images.NewStableDiffusion(cfg.HFToken),
		images.NewUnsplash(cfg.UnsplashAccessKey),
	)

	// --- Services ---
	generator := site.NewGenerator(chain, presets, library, enhancements, filler, logger)

	sessions := session.NewStore(cfg.SessionTTL, logger)
	if cfg.SessionTTL > 0 {
		go sessions.StartJanitor(ctx, 10*time.Minute)
	}

	apiHandler := internalapi.NewAPIHandler(generator, sessions, presets, library, enhancements, logger)

	// --- HTTP Server ---
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()        // Use gin.New() for more control over middleware
	router.Use(gin.Logger())   // Add structured logger middleware
	router.Use(gin.Recovery()) // Add panic recovery middleware

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Set timeouts to prevent slow client attacks. Generation calls can
		// legitimately take minutes, so the write timeout is generous.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("starting API server", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("API server listen error", zap.Error(err))
		}
		logger.Info("API server has stopped listening")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	// Stop background tasks (session janitor) and drain the HTTP server.
	cancel()

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("API server forced shutdown", zap.Error(err))
	} else {
		logger.Info("API server gracefully stopped")
	}

	logger.Info("application exiting")
}
