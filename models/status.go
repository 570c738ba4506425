package models

import "time"

// OperationStatus reports the outcome of a mutating maintenance
// operation (database refresh, specialty remapping).
type OperationStatus struct {
	// Operation names the operation that produced this status,
	// e.g. "refresh" or "map-specialty".
	Operation string `json:"operation"`

	// Processed is the number of records the operation examined.
	Processed int `json:"processed"`

	// Changed is the number of records the operation created or modified.
	Changed int `json:"changed"`

	// Took is the wall-clock duration of the operation.
	Took time.Duration `json:"took"`

	// StartedAt is the timestamp at which the operation began.
	StartedAt time.Time `json:"started_at"`
}
