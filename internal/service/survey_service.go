// internal/service/survey_service.go
package service

import (
	"log"
	"time"

	appErrors "github.com/districtfive/survey-backend/internal/errors"
	"github.com/districtfive/survey-backend/internal/model"
	"github.com/districtfive/survey-backend/internal/repository"
)

type SurveyService struct {
	Repo    repository.ResponseRepositoryInterface
	Backup  *BackupWriter
	DataDir string
}

// Stats result for the stats endpoint
type SurveyStats struct {
	Total             int            `json:"total"`
	ByNeighborhood    map[string]int `json:"by_neighborhood"`
	ByAgeGroup        map[string]int `json:"by_age_group"`
	ByVotingFrequency map[string]int `json:"by_voting_frequency"`
}

// requiredField pairs the API field name with its value for ordered checks.
type requiredField struct {
	name  string
	value string
}

// ValidateSubmission is a pure check: it returns the first violated
// constraint and has no side effects. Required fields are checked in a
// fixed order, then the issues selection.
func ValidateSubmission(resp *model.SurveyResponse) error {
	required := []requiredField{
		{"phoneNumber", resp.PhoneNumber},
		{"name", resp.Name},
		{"neighborhood", resp.Neighborhood},
		{"ageGroup", resp.AgeGroup},
		{"votingFrequency", resp.VotingFrequency},
		{"engagement", resp.Engagement},
	}
	for _, f := range required {
		if f.value == "" {
			return appErrors.NewMissingField(f.name)
		}
	}

	if len(resp.Issues) == 0 {
		return appErrors.ErrEmptySelection
	}

	return nil
}

// Submit validates the payload, default-fills the timestamp, inserts the
// row, then appends it to the JSON backup. A validation or insert failure
// short-circuits before the backup write; the store-then-backup pair is
// deliberately not atomic.
func (s *SurveyService) Submit(resp *model.SurveyResponse) (int, error) {
	if err := ValidateSubmission(resp); err != nil {
		return 0, err
	}

	if resp.Timestamp == "" {
		resp.Timestamp = time.Now().Format(time.RFC3339)
	}

	id, err := s.Repo.Insert(resp)
	if err != nil {
		return 0, err
	}

	if err := s.Backup.Append(resp); err != nil {
		return id, err
	}

	log.Printf("Survey response saved (ID: %d) from %s", id, resp.Name)
	return id, nil
}

// ListResponses returns all stored responses, newest first.
func (s *SurveyService) ListResponses() ([]model.SurveyResponse, error) {
	return s.Repo.ListAll()
}

// Stats assembles the total count plus the three grouped breakdowns.
func (s *SurveyService) Stats() (*SurveyStats, error) {
	total, err := s.Repo.CountAll()
	if err != nil {
		return nil, err
	}

	byNeighborhood, err := s.Repo.CountByField("neighborhood")
	if err != nil {
		return nil, err
	}
	byAgeGroup, err := s.Repo.CountByField("age_group")
	if err != nil {
		return nil, err
	}
	byVotingFrequency, err := s.Repo.CountByField("voting_frequency")
	if err != nil {
		return nil, err
	}

	return &SurveyStats{
		Total:             total,
		ByNeighborhood:    byNeighborhood,
		ByAgeGroup:        byAgeGroup,
		ByVotingFrequency: byVotingFrequency,
	}, nil
}
