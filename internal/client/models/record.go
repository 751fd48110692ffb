// Package models holds the normalized, locally cached records of every
// resource collection the console shows.
package models

import "time"

// Record is one normalized item of a resource collection. RecordID is unique
// within a collection snapshot.
type Record interface {
	RecordID() string
	// SearchFields lists the values a free-text query is matched against.
	SearchFields() []string
}

// Timestamped records take part in time-range filtering and are shown most
// recent first.
type Timestamped interface {
	When() time.Time
}

// Statused records can be filtered by an exact status value.
type Statused interface {
	StatusValue() string
}

// Amounted records contribute to summary totals.
type Amounted interface {
	AmountValue() float64
}
