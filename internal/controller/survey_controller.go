// internal/controller/survey_controller.go
package controller

import (
	"encoding/json"
	"log"
	"net/http"

	appErrors "github.com/districtfive/survey-backend/internal/errors"
	"github.com/districtfive/survey-backend/internal/model"
	"github.com/districtfive/survey-backend/internal/service"
)

type SurveyController struct {
	SurveyService *service.SurveyService
	SurveyPage    string // path to the static form page
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// SurveyPageHandler serves the static form for GET / and GET /survey.html.
func (c *SurveyController) SurveyPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, c.SurveyPage)
}

// SubmitSurvey handles POST /api/submit-survey.
func (c *SurveyController) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	var payload model.SurveyResponse
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	id, err := c.SurveyService.Submit(&payload)
	if err != nil {
		if appErrors.IsValidation(err) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		log.Println("⚠️ Error saving survey response:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Failed to save survey response",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Survey response saved successfully",
		"id":      id,
	})
}

// ListResponses handles GET /api/responses.
func (c *SurveyController) ListResponses(w http.ResponseWriter, r *http.Request) {
	responses, err := c.SurveyService.ListResponses()
	if err != nil {
		log.Println("⚠️ Error fetching responses:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Failed to fetch responses",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"count":     len(responses),
		"responses": responses,
	})
}

// ExportCSV handles GET /api/export-csv.
func (c *SurveyController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filename, err := c.SurveyService.ExportCSV()
	if err != nil {
		log.Println("⚠️ Error exporting CSV:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Failed to export CSV",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "CSV exported successfully",
		"filename": filename,
	})
}

// Stats handles GET /api/stats.
func (c *SurveyController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.SurveyService.Stats()
	if err != nil {
		log.Println("⚠️ Error fetching stats:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Failed to fetch statistics",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}
