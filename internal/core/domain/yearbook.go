package domain

import "time"

// YearbookStatus marks whether a fiscal year still accepts postings.
type YearbookStatus string

const (
	YearbookOpening YearbookStatus = "Opening"
	YearbookClosing YearbookStatus = "Closing"
)

// Yearbook is a fiscal year. At most one yearbook is Opening at any time.
type Yearbook struct {
	YearbookID string         `json:"yearbookID"`
	Year       int            `json:"year"`
	StartDate  time.Time      `json:"startDate"`
	EndDate    time.Time      `json:"endDate"`
	Status     YearbookStatus `json:"status"`
	AuditFields
}

// Covers reports whether date falls within the yearbook, both ends inclusive.
func (y Yearbook) Covers(date time.Time) bool {
	return !date.Before(y.StartDate) && !date.After(y.EndDate)
}
