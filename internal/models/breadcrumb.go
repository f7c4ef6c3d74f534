// models/breadcrumb.go
package models

import "time"

// Breadcrumb is a single timestamped location sample tied to a shift.
// The sample time is client-supplied and not checked against the shift
// window. AccuracyM uses a pointer to distinguish 0 from absent.
type Breadcrumb struct {
	ID        string    `json:"id"`
	ShiftID   string    `json:"shift_id"`
	At        time.Time `json:"at"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	AccuracyM *float64  `json:"accuracy_m,omitempty"`
}

// LastLocation is the newest sample per open shift, for the admin map view.
type LastLocation struct {
	ShiftID     string    `json:"shift_id"`
	WorkerEmail string    `json:"worker_email"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Ts          time.Time `json:"ts"`
}
