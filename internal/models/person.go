package models

import (
	"time"
)

// PersonStatus represents where a person is in the roster lifecycle
type PersonStatus string

const (
	// PersonStatusNew indicates a person put on the roster who has not joined yet
	PersonStatusNew PersonStatus = "NEW"

	// PersonStatusActive indicates a claimed person who takes part in stats
	PersonStatusActive PersonStatus = "ACTIVE"

	// PersonStatusInactive indicates a suspended person
	PersonStatusInactive PersonStatus = "INACTIVE"
)

// IsValid reports whether the status is one of the known values
func (s PersonStatus) IsValid() bool {
	switch s {
	case PersonStatusNew, PersonStatusActive, PersonStatusInactive:
		return true
	}
	return false
}

// Person is a member of the drinking group
type Person struct {
	// ID is the unique identifier for the person
	ID string

	// Name is the display name, unique across the roster
	Name string

	// Status is the roster status of the person
	Status PersonStatus

	// Deleted marks a person removed from the roster
	Deleted bool

	// CreatedAt is when the person was added
	CreatedAt time.Time
}

// IsEligible reports whether the person takes part in aggregates
func (p *Person) IsEligible() bool {
	return p != nil && p.Status == PersonStatusActive && !p.Deleted
}
