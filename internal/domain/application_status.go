package domain

import (
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

// rank orders the non-rejected pipeline stages.
var rank = map[models.ApplicationStatus]int{
	models.StatusApplied:     0,
	models.StatusShortlisted: 1,
	models.StatusTest:        2,
	models.StatusInterview:   3,
	models.StatusAccepted:    4,
}

// InitialStatus is the only status an application can be created with.
const InitialStatus = models.StatusApplied

// ParseApplicationStatus maps raw input onto the status enum. Matching is exact.
func ParseApplicationStatus(raw string) (models.ApplicationStatus, error) {
	s := models.ApplicationStatus(raw)
	if !s.Valid() {
		return "", apperrors.ErrInvalidStatus
	}
	return s, nil
}

// IsTerminal reports whether no further transition is allowed from s.
func IsTerminal(s models.ApplicationStatus) bool {
	return s == models.StatusAccepted || s == models.StatusRejected
}

// CanTransition reports whether from -> to is allowed by the pipeline table:
// forward moves only, REJECTED from any open stage, nothing out of a terminal
// stage. Writing the current status again is allowed and changes nothing.
func CanTransition(from, to models.ApplicationStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	if IsTerminal(from) {
		return false
	}
	if to == models.StatusRejected {
		return true
	}
	return rank[to] > rank[from]
}

// TransitionPolicy decides which status writes are accepted. With Strict unset
// any enum value may be written over any other.
type TransitionPolicy struct {
	Strict bool
}

// Check validates a transition and returns ErrInvalidStatus for a target
// outside the enum or ErrIllegalTransition for a move the table forbids.
func (p TransitionPolicy) Check(from, to models.ApplicationStatus) error {
	if !to.Valid() {
		return apperrors.ErrInvalidStatus
	}
	if !p.Strict {
		return nil
	}
	if !CanTransition(from, to) {
		return apperrors.ErrIllegalTransition
	}
	return nil
}
