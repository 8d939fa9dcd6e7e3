package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/sociallead-crm/internal/infra/database"
	"github.com/xavierca1/sociallead-crm/internal/infra/http/handlers"
	"github.com/xavierca1/sociallead-crm/internal/infra/http/middleware"
	"github.com/xavierca1/sociallead-crm/internal/infra/integration/gemini"
	"github.com/xavierca1/sociallead-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	dbPath := os.Getenv("SQLITE_PATH")
	if dbPath == "" {
		dbPath = "sociallead.db"
	}

	db, err := database.NewDBConnection(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Stores
	leadStore, err := database.NewLeadStore(db)
	if err != nil {
		log.Fatal(err)
	}
	settingsStore := database.NewSettingsStore(db)

	// 2. Integração Gemini
	ai := gemini.NewClient(context.Background(), os.Getenv("GEMINI_API_KEY"))
	ai.OnError = middleware.RecordGeminiError

	// 3. UseCases
	captureUC := usecase.NewCaptureLeadUseCase(leadStore, ai, settingsStore)
	captureUC.OnCapture = middleware.RecordLeadCaptured

	listUC := usecase.NewListLeadsUseCase(leadStore)
	exportUC := usecase.NewExportLeadsUseCase(leadStore)
	statsUC := usecase.NewDashboardStatsUseCase(leadStore)

	sendMessageUC := usecase.NewSendMessageUseCase(leadStore)
	sendMessageUC.OnSend = middleware.RecordMessageSent
	updateStatusUC := usecase.NewUpdateLeadStatusUseCase(leadStore)
	updateStatusUC.OnStatusChange = middleware.RecordStatusChange

	draftReplyUC := usecase.NewDraftReplyUseCase(leadStore, ai, os.Getenv("BUSINESS_CONTEXT"))

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(captureUC, listUC, exportUC, leadStore)
	conversationHandler := handlers.NewConversationHandler(sendMessageUC, updateStatusUC, draftReplyUC)
	statsHandler := handlers.NewStatsHandler(statsUC)
	settingsHandler := handlers.NewSettingsHandler(settingsStore)
	healthHandler := handlers.NewHealthHandler(db, ai)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.Capture)
	r.Get("/leads", leadHandler.List)
	r.Get("/leads/export", leadHandler.Export)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Post("/leads/{id}/messages", conversationHandler.SendMessage)
	r.Put("/leads/{id}/status", conversationHandler.UpdateStatus)
	r.Post("/leads/{id}/draft", conversationHandler.DraftReply)
	r.Get("/stats", statsHandler.Handle)
	r.Get("/settings", settingsHandler.Get)
	r.Put("/settings", settingsHandler.Update)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 SocialLead CRM rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
