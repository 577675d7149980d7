package main

import (
	"log"
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/revisio/notes-backend/internal/ai"
	"github.com/revisio/notes-backend/internal/config"
	"github.com/revisio/notes-backend/internal/delivery"
	"github.com/revisio/notes-backend/internal/gemini"
	"github.com/revisio/notes-backend/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg := config.Load()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// The server still starts without a key; every upstream call then
	// fails with a configuration error instead.
	apiKey := cfg.APIKey
	if !cfg.KeyConfigured() {
		apiKey = ""
		zl.Log(logger.LogEntry{
			Level:   "warn",
			Message: "GEMINI_API_KEY is not set, upstream calls will fail",
			Service: "notes-backend",
		})
	}

	// =========================================================================
	// CLIENTS / SERVICES
	// =========================================================================

	geminiClient := gemini.NewClient(apiKey, zl)

	aiService := ai.NewService(geminiClient, cfg.SummarizeEndpoint)
	speechService := speech.NewService(geminiClient, cfg.SpeechEndpoint)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	summarizeHandler := delivery.NewSummarizeHandler(aiService, zl)
	speechHandler := delivery.NewSpeechHandler(speechService, zl)

	delivery.RegisterRoutes(r, summarizeHandler, speechHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "notes-backend",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
