package controller_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/districtfive/survey-backend/internal/controller"
	appErrors "github.com/districtfive/survey-backend/internal/errors"
	"github.com/districtfive/survey-backend/internal/model"
	"github.com/districtfive/survey-backend/internal/service"
)

// --- Mock Repository ---

type MockResponseRepo struct {
	nextID     int
	inserted   []model.SurveyResponse
	failInsert bool
}

func (m *MockResponseRepo) EnsureSchema() error { return nil }

func (m *MockResponseRepo) Insert(r *model.SurveyResponse) (int, error) {
	if m.failInsert {
		return 0, appErrors.NewStorageError("insert", errors.New("connection lost"))
	}
	m.nextID++
	r.ID = m.nextID
	m.inserted = append(m.inserted, *r)
	return m.nextID, nil
}

func (m *MockResponseRepo) ListAll() ([]model.SurveyResponse, error) {
	out := make([]model.SurveyResponse, len(m.inserted))
	copy(out, m.inserted)
	return out, nil
}

func (m *MockResponseRepo) CountByField(field string) (map[string]int, error) {
	counts := map[string]int{}
	for _, r := range m.inserted {
		switch field {
		case "neighborhood":
			counts[r.Neighborhood]++
		case "age_group":
			counts[r.AgeGroup]++
		case "voting_frequency":
			counts[r.VotingFrequency]++
		}
	}
	return counts, nil
}

func (m *MockResponseRepo) CountAll() (int, error) {
	return len(m.inserted), nil
}

// --- Helpers ---

func setupRouter(t *testing.T, repo *MockResponseRepo) (*chi.Mux, *service.SurveyService) {
	t.Helper()

	dataDir := t.TempDir()
	svc := &service.SurveyService{
		Repo:    repo,
		Backup:  service.NewBackupWriter(dataDir),
		DataDir: dataDir,
	}
	sc := &controller.SurveyController{SurveyService: svc}

	r := chi.NewRouter()
	r.Post("/api/submit-survey", sc.SubmitSurvey)
	r.Get("/api/responses", sc.ListResponses)
	r.Get("/api/export-csv", sc.ExportCSV)
	r.Get("/api/stats", sc.Stats)
	return r, svc
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"phoneNumber":     "6175550100",
		"name":            "Jane Doe",
		"neighborhood":    "Hyde Park",
		"ageGroup":        "35-44",
		"votingFrequency": "Every election",
		"issues":          []string{"Housing", "Schools"},
		"engagement":      "Very engaged",
	}
}

func postJSON(t *testing.T, router http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func getJSON(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return rr, body
}

// --- Tests ---

func TestSubmitSurveySuccess(t *testing.T) {
	router, _ := setupRouter(t, &MockResponseRepo{})

	rr := postJSON(t, router, "/api/submit-survey", validPayload())
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["success"] != true {
		t.Error("expected success=true")
	}
	if body["id"] != float64(1) {
		t.Errorf("expected id 1, got %v", body["id"])
	}
}

func TestSubmitSurveyMissingName(t *testing.T) {
	repo := &MockResponseRepo{}
	router, svc := setupRouter(t, repo)

	payload := validPayload()
	payload["name"] = ""
	rr := postJSON(t, router, "/api/submit-survey", payload)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("name")) {
		t.Errorf("error should identify missing field: %s", rr.Body.String())
	}
	if len(repo.inserted) != 0 {
		t.Error("row inserted despite validation failure")
	}
	if _, err := os.Stat(svc.Backup.Path); !os.IsNotExist(err) {
		t.Error("backup written despite validation failure")
	}
}

func TestSubmitSurveyEmptyIssues(t *testing.T) {
	router, _ := setupRouter(t, &MockResponseRepo{})

	payload := validPayload()
	payload["issues"] = []string{}
	rr := postJSON(t, router, "/api/submit-survey", payload)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSubmitSurveyStorageFailure(t *testing.T) {
	router, _ := setupRouter(t, &MockResponseRepo{failInsert: true})

	rr := postJSON(t, router, "/api/submit-survey", validPayload())
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["details"] == nil {
		t.Error("expected raw error details in 500 response")
	}
}

func TestSubmitSurveyInvalidBody(t *testing.T) {
	router, _ := setupRouter(t, &MockResponseRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/submit-survey", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestListResponses(t *testing.T) {
	router, _ := setupRouter(t, &MockResponseRepo{})

	postJSON(t, router, "/api/submit-survey", validPayload())

	rr, body := getJSON(t, router, "/api/responses")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body["count"] != float64(1) {
		t.Errorf("expected count 1, got %v", body["count"])
	}

	responses := body["responses"].([]interface{})
	first := responses[0].(map[string]interface{})
	issues, ok := first["issues"].([]interface{})
	if !ok || len(issues) != 2 {
		t.Errorf("issues not restored to array: %v", first["issues"])
	}
}

func TestStatsEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &MockResponseRepo{})

	for _, hood := range []string{"A", "A", "B"} {
		payload := validPayload()
		payload["neighborhood"] = hood
		postJSON(t, router, "/api/submit-survey", payload)
	}

	rr, body := getJSON(t, router, "/api/stats")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	stats := body["stats"].(map[string]interface{})
	if stats["total"] != float64(3) {
		t.Errorf("expected total 3, got %v", stats["total"])
	}
	byHood := stats["by_neighborhood"].(map[string]interface{})
	if byHood["A"] != float64(2) || byHood["B"] != float64(1) {
		t.Errorf("unexpected breakdown: %v", byHood)
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	router, _ := setupRouter(t, &MockResponseRepo{})

	postJSON(t, router, "/api/submit-survey", validPayload())

	rr, body := getJSON(t, router, "/api/export-csv")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	filename, _ := body["filename"].(string)
	if filename == "" {
		t.Fatal("expected filename in response")
	}
	if _, err := os.Stat(filename); err != nil {
		t.Errorf("export file not written: %v", err)
	}
}
