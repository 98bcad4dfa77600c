package main

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/vidyasetu/backend/internal/chat"
	"github.com/vidyasetu/backend/internal/config"
	"github.com/vidyasetu/backend/internal/content"
	"github.com/vidyasetu/backend/internal/dataset"
	"github.com/vidyasetu/backend/internal/lessons"
	"github.com/vidyasetu/backend/internal/llm"
	"github.com/vidyasetu/backend/internal/logger"
	"github.com/vidyasetu/backend/internal/models"
	"github.com/vidyasetu/backend/internal/reading"
	"github.com/vidyasetu/backend/internal/store"
	"github.com/vidyasetu/backend/internal/telemetry"
	"github.com/vidyasetu/backend/internal/worksheets"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	metrics := telemetry.New()

	provider, err := llm.New(context.Background(), llm.Options{
		Provider:        cfg.Provider,
		GeminiAPIKey:    cfg.GeminiAPIKey,
		GeminiModel:     cfg.GeminiModel,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
	})
	if err != nil {
		log.Fatalw("failed to build LLM provider", "error", err)
	}
	log.Infow("LLM provider ready", "provider", cfg.Provider, "model", provider.ModelID())

	contentExamples := dataset.Load(filepath.Join(cfg.DatasetDir, "content_examples.csv"))
	lessonExamples := dataset.Load(filepath.Join(cfg.DatasetDir, "lesson_examples.csv"))
	log.Infow("reference tables loaded",
		"content_rows", contentExamples.Len(),
		"lesson_rows", lessonExamples.Len())

	// Per-flow in-memory history lists.
	contentStore := store.NewList[models.GeneratedContent]()
	visualAidStore := store.NewList[models.GeneratedVisualAid]()
	lessonStore := store.NewList[models.LessonPlan]()
	worksheetStore := store.NewList[models.WorksheetSet]()
	chatStore := store.NewList[models.ChatMessage]()
	readingStore := store.NewList[models.ReadingAssessmentResult]()

	contentHandler := content.NewHandler(content.NewService(provider, contentStore, visualAidStore, contentExamples, log, metrics))
	lessonHandler := lessons.NewHandler(lessons.NewService(provider, lessonStore, lessonExamples, log, metrics))
	worksheetHandler := worksheets.NewHandler(worksheets.NewService(provider, worksheetStore, log, metrics))
	chatHandler := chat.NewHandler(chat.NewService(provider, chatStore, log, metrics))
	readingHandler := reading.NewHandler(reading.NewService(provider, readingStore, log, metrics))

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/content", contentHandler.Generate).Methods("POST")
	api.HandleFunc("/content", contentHandler.List).Methods("GET")
	api.HandleFunc("/visual-aids", contentHandler.GenerateVisualAid).Methods("POST")
	api.HandleFunc("/visual-aids", contentHandler.ListVisualAids).Methods("GET")
	api.HandleFunc("/lesson-plans", lessonHandler.Generate).Methods("POST")
	api.HandleFunc("/lesson-plans", lessonHandler.List).Methods("GET")
	api.HandleFunc("/worksheets", worksheetHandler.Generate).Methods("POST")
	api.HandleFunc("/worksheets", worksheetHandler.List).Methods("GET")
	api.HandleFunc("/chat", chatHandler.Ask).Methods("POST")
	api.HandleFunc("/chat/history", chatHandler.History).Methods("GET")
	api.HandleFunc("/chat/history", chatHandler.ClearHistory).Methods("DELETE")
	api.HandleFunc("/reading-assessments", readingHandler.Assess).Methods("POST")
	api.HandleFunc("/reading-assessments", readingHandler.List).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Infow("server starting", "port", cfg.Port, "env", cfg.Env)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatalw("server failed", "error", err)
	}
}
