// models/shift.go
package models

import "time"

// Shift is a bounded work session for a worker at a site. EndedAt is nil
// while the shift is active.
type Shift struct {
	ID          string     `json:"id"`
	SiteID      string     `json:"site_id"`
	WorkerEmail string     `json:"worker_email"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at"`
}
