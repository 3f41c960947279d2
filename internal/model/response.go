// internal/model/response.go
package model

// SurveyResponse is one voter's completed submission. Rows are append-only
// and immutable once stored; the id is assigned by the store on insert.
type SurveyResponse struct {
	ID                 int      `db:"id" json:"id"`
	PhoneNumber        string   `db:"phone_number" json:"phoneNumber"`
	Name               string   `db:"name" json:"name"`
	Email              string   `db:"email" json:"email,omitempty"`
	Neighborhood       string   `db:"neighborhood" json:"neighborhood"`
	AgeGroup           string   `db:"age_group" json:"ageGroup"`
	VotingFrequency    string   `db:"voting_frequency" json:"votingFrequency"`
	Issues             []string `db:"issues" json:"issues"`
	Engagement         string   `db:"engagement" json:"engagement"`
	AdditionalComments string   `db:"additional_comments" json:"additionalComments,omitempty"`
	Timestamp          string   `db:"timestamp" json:"timestamp"`
}
