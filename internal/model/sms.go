// internal/model/sms.go
package model

// Recipient is one entry in a bulk-send recipients file.
type Recipient struct {
	Phone string `json:"phone"`
	Name  string `json:"name,omitempty"`
}

// SentMessageRecord captures the outcome of a single send attempt. Records
// live in memory for the duration of one run and are optionally flushed to
// a log file; they are never written to the survey store.
type SentMessageRecord struct {
	Success   bool   `json:"success"`
	To        string `json:"to"`
	Name      string `json:"name,omitempty"`
	SID       string `json:"sid,omitempty"`
	Status    string `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// BulkSendSummary aggregates one bulk run.
type BulkSendSummary struct {
	Total      int                 `json:"total"`
	Successful int                 `json:"successful"`
	Failed     int                 `json:"failed"`
	Details    []SentMessageRecord `json:"details"`
}
