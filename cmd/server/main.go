// cmd/server/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/districtfive/survey-backend/internal/config"
	"github.com/districtfive/survey-backend/internal/controller"
	"github.com/districtfive/survey-backend/internal/db"
	"github.com/districtfive/survey-backend/internal/repository"
	"github.com/districtfive/survey-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Open DB (creates the data directory on first run)
	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer conn.Close()

	responseRepo := &repository.ResponseRepository{DB: conn, Driver: cfg.Driver()}
	if err := responseRepo.EnsureSchema(); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	surveyService := &service.SurveyService{
		Repo:    responseRepo,
		Backup:  service.NewBackupWriter(cfg.DataDir),
		DataDir: cfg.DataDir,
	}

	surveyController := &controller.SurveyController{
		SurveyService: surveyService,
		SurveyPage:    "survey.html",
	}

	r := chi.NewRouter()

	// Survey routes
	r.Get("/", surveyController.SurveyPageHandler)
	r.Get("/survey.html", surveyController.SurveyPageHandler)
	r.Post("/api/submit-survey", surveyController.SubmitSurvey)
	r.Get("/api/responses", surveyController.ListResponses)
	r.Get("/api/export-csv", surveyController.ExportCSV)
	r.Get("/api/stats", surveyController.Stats)

	log.Println(strings.Repeat("=", 60))
	log.Println("District 5 Survey Backend Server")
	log.Printf("🚀 Server starting on http://localhost:%d", cfg.Port)
	log.Printf("Survey available at http://localhost:%d/survey.html", cfg.Port)
	log.Println(strings.Repeat("=", 60))

	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), r))
}
