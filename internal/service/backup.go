// internal/service/backup.go
package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/districtfive/survey-backend/internal/model"
)

// BackupFileName is the JSON mirror of all submissions under the data
// directory.
const BackupFileName = "responses.json"

// BackupWriter maintains an append-only JSON mirror of every accepted
// submission, independent of the primary store.
type BackupWriter struct {
	Path string
}

func NewBackupWriter(dataDir string) *BackupWriter {
	return &BackupWriter{Path: filepath.Join(dataDir, BackupFileName)}
}

// Append reads the full backup document, appends the new payload, and
// rewrites the file. Not atomic with the database insert and not locked:
// concurrent submissions can interleave the read-modify-write and lose
// entries.
func (w *BackupWriter) Append(resp *model.SurveyResponse) error {
	responses := []model.SurveyResponse{}

	data, err := os.ReadFile(w.Path)
	if err == nil {
		if err := json.Unmarshal(data, &responses); err != nil {
			return fmt.Errorf("failed to parse backup file %s: %w", w.Path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read backup file %s: %w", w.Path, err)
	}

	responses = append(responses, *resp)

	out, err := json.MarshalIndent(responses, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.Path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file %s: %w", w.Path, err)
	}

	return nil
}
