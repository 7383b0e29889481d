package models

import (
	"time"

	"github.com/google/uuid"
)

// FilterData narrows an announcement's audience. Only the list matching the
// audience is consulted; the other is ignored.
type FilterData struct {
	Branches        []Branch `json:"branches,omitempty"`
	GraduationYears []int    `json:"graduationYears,omitempty"`
}

// Announcement is a notice posted by an admin
type Announcement struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Audience    Audience    `json:"audience" db:"audience"`
	FilterData  *FilterData `json:"filterData,omitempty" db:"filter_data"`
	CreatedBy   uuid.UUID   `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}
