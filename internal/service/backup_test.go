package service_test

import (
	"encoding/json"
	"os"
	"reflect"
	"testing"

	"github.com/districtfive/survey-backend/internal/model"
	"github.com/districtfive/survey-backend/internal/service"
)

func TestBackupAppendPreservesOrder(t *testing.T) {
	w := service.NewBackupWriter(t.TempDir())

	first := validResponse()
	first.Issues = []string{"Housing", "Schools", "Jobs"}
	if err := w.Append(first); err != nil {
		t.Fatalf("first Append failed: %v", err)
	}

	second := validResponse()
	second.Name = "John Smith"
	second.Timestamp = "2024-03-02T09:30:00Z"
	if err := w.Append(second); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}

	data, err := os.ReadFile(w.Path)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}

	var responses []model.SurveyResponse
	if err := json.Unmarshal(data, &responses); err != nil {
		t.Fatalf("backup document is not a JSON array: %v", err)
	}

	if len(responses) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(responses))
	}
	if responses[0].Name != "Jane Doe" || responses[1].Name != "John Smith" {
		t.Errorf("entries out of order: %q, %q", responses[0].Name, responses[1].Name)
	}
	if !reflect.DeepEqual(responses[0].Issues, []string{"Housing", "Schools", "Jobs"}) {
		t.Errorf("issues not preserved: %v", responses[0].Issues)
	}
}

func TestBackupAppendRejectsCorruptFile(t *testing.T) {
	w := service.NewBackupWriter(t.TempDir())
	if err := os.WriteFile(w.Path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := w.Append(validResponse()); err == nil {
		t.Error("expected error appending to corrupt backup")
	}
}
