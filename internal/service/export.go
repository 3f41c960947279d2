// internal/service/export.go
package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Columns match the storage schema so the CSV mirrors the table exactly.
var exportColumns = []string{
	"id", "phone_number", "name", "email", "neighborhood", "age_group",
	"voting_frequency", "issues", "engagement", "additional_comments", "timestamp",
}

// ExportCSV dumps the full store to a timestamped CSV file under the data
// directory and returns its path. The header row comes from the fixed
// column list, so a zero-row store yields a well-formed header-only file
// rather than an error.
func (s *SurveyService) ExportCSV() (string, error) {
	responses, err := s.Repo.ListAll()
	if err != nil {
		return "", err
	}

	filename := filepath.Join(s.DataDir,
		fmt.Sprintf("responses_export_%s.csv", time.Now().Format("20060102_150405")))

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create export file %s: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportColumns); err != nil {
		return "", err
	}

	for _, resp := range responses {
		issues, err := json.Marshal(resp.Issues)
		if err != nil {
			return "", err
		}
		record := []string{
			strconv.Itoa(resp.ID),
			resp.PhoneNumber,
			resp.Name,
			resp.Email,
			resp.Neighborhood,
			resp.AgeGroup,
			resp.VotingFrequency,
			string(issues),
			resp.Engagement,
			resp.AdditionalComments,
			resp.Timestamp,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return filename, nil
}
