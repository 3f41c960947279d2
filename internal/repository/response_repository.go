package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	appErrors "github.com/districtfive/survey-backend/internal/errors"
	"github.com/districtfive/survey-backend/internal/model"
)

type ResponseRepositoryInterface interface {
	EnsureSchema() error
	Insert(r *model.SurveyResponse) (int, error)
	ListAll() ([]model.SurveyResponse, error)
	CountByField(field string) (map[string]int, error)
	CountAll() (int, error)
}

type ResponseRepository struct {
	DB     *sql.DB
	Driver string // "sqlite" or "postgres"
}

// Grouping columns exposed through the stats endpoint. Anything else is
// rejected before it reaches SQL.
var groupableColumns = map[string]bool{
	"neighborhood":     true,
	"age_group":        true,
	"voting_frequency": true,
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS responses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    phone_number TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT,
    neighborhood TEXT NOT NULL,
    age_group TEXT NOT NULL,
    voting_frequency TEXT NOT NULL,
    issues TEXT NOT NULL,
    engagement TEXT NOT NULL,
    additional_comments TEXT,
    timestamp TEXT NOT NULL
)`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS responses (
    id SERIAL PRIMARY KEY,
    phone_number TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT,
    neighborhood TEXT NOT NULL,
    age_group TEXT NOT NULL,
    voting_frequency TEXT NOT NULL,
    issues TEXT NOT NULL,
    engagement TEXT NOT NULL,
    additional_comments TEXT,
    timestamp TEXT NOT NULL
)`

// EnsureSchema creates the responses table if absent. Safe to call on
// every process start.
func (r *ResponseRepository) EnsureSchema() error {
	schema := sqliteSchema
	if r.Driver == "postgres" {
		schema = postgresSchema
	}
	if _, err := r.DB.Exec(schema); err != nil {
		return appErrors.NewStorageError("init", err)
	}
	return nil
}

// Insert appends one immutable row and returns the assigned id. The issues
// slice is serialized to a JSON text blob so ListAll can restore the
// original order.
func (r *ResponseRepository) Insert(resp *model.SurveyResponse) (int, error) {
	issues, err := json.Marshal(resp.Issues)
	if err != nil {
		return 0, appErrors.NewStorageError("insert", err)
	}

	query := `
        INSERT INTO responses (
            phone_number, name, email, neighborhood, age_group,
            voting_frequency, issues, engagement, additional_comments, timestamp
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	var id int
	err = r.DB.QueryRow(query,
		resp.PhoneNumber, resp.Name, resp.Email, resp.Neighborhood, resp.AgeGroup,
		resp.VotingFrequency, string(issues), resp.Engagement, resp.AdditionalComments, resp.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, appErrors.NewStorageError("insert", err)
	}

	resp.ID = id
	return id, nil
}

// ListAll returns every response, newest timestamp first, with the issues
// blob deserialized back into its ordered slice.
func (r *ResponseRepository) ListAll() ([]model.SurveyResponse, error) {
	query := `
        SELECT id, phone_number, name, email, neighborhood, age_group,
               voting_frequency, issues, engagement, additional_comments, timestamp
        FROM responses ORDER BY timestamp DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, appErrors.NewStorageError("list", err)
	}
	defer rows.Close()

	responses := []model.SurveyResponse{}
	for rows.Next() {
		var resp model.SurveyResponse
		var email, comments sql.NullString
		var issues string
		if err := rows.Scan(
			&resp.ID, &resp.PhoneNumber, &resp.Name, &email, &resp.Neighborhood,
			&resp.AgeGroup, &resp.VotingFrequency, &issues, &resp.Engagement,
			&comments, &resp.Timestamp,
		); err != nil {
			return nil, appErrors.NewStorageError("list", err)
		}
		resp.Email = email.String
		resp.AdditionalComments = comments.String
		if err := json.Unmarshal([]byte(issues), &resp.Issues); err != nil {
			return nil, appErrors.NewStorageError("list", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewStorageError("list", err)
	}

	return responses, nil
}

// CountByField returns a value→count map for one of the groupable columns.
func (r *ResponseRepository) CountByField(field string) (map[string]int, error) {
	if !groupableColumns[field] {
		return nil, appErrors.NewStorageError("stats", fmt.Errorf("cannot group by column %q", field))
	}

	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM responses GROUP BY %s`, field, field)
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, appErrors.NewStorageError("stats", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return nil, appErrors.NewStorageError("stats", err)
		}
		counts[value] = count
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewStorageError("stats", err)
	}

	return counts, nil
}

func (r *ResponseRepository) CountAll() (int, error) {
	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&total); err != nil {
		return 0, appErrors.NewStorageError("stats", err)
	}
	return total, nil
}

var _ ResponseRepositoryInterface = (*ResponseRepository)(nil)
