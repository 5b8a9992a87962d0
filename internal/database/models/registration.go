package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DisciplineEntry is one discipline inside a registration. Team entries share
// DisciplineID and InviteCode verbatim across every member's registration.
type DisciplineEntry struct {
	DisciplineID string         `json:"discipline_id"`
	Name         string         `json:"name"`
	Group        string         `json:"group,omitempty"`
	Kind         DisciplineKind `json:"kind"`
	Team         *TeamRoster    `json:"team,omitempty"`
	InviteCode   *string        `json:"invite_code,omitempty"`
}

// Clone returns a deep copy of the entry
func (e DisciplineEntry) Clone() DisciplineEntry {
	out := e
	out.Team = e.Team.Clone()
	if e.InviteCode != nil {
		code := *e.InviteCode
		out.InviteCode = &code
	}
	return out
}

// Code returns the invite code or an empty string
func (e DisciplineEntry) Code() string {
	if e.InviteCode == nil {
		return ""
	}
	return *e.InviteCode
}

// IsTeam reports whether the entry carries a team roster
func (e DisciplineEntry) IsTeam() bool {
	return e.Team != nil
}

// DisciplineEntries is stored as a jsonb array on the registrations table
type DisciplineEntries []DisciplineEntry

// Value implements driver.Valuer
func (d DisciplineEntries) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (d *DisciplineEntries) Scan(value interface{}) error {
	if value == nil {
		*d = DisciplineEntries{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into DisciplineEntries", value)
	}
	return json.Unmarshal(raw, d)
}

// GormDataType tells gorm which column type to migrate
func (DisciplineEntries) GormDataType() string {
	return "jsonb"
}

// Registration is one student's enrollment record for an event. Version is bumped on every
// write and guards overwrites against concurrent changes.
type Registration struct {
	BaseModel
	EventID     uuid.UUID          `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_registrations_event_student" validate:"required"`
	StudentID   uuid.UUID          `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_registrations_event_student;index" validate:"required"`
	Disciplines DisciplineEntries  `json:"disciplines" gorm:"type:jsonb;not null;default:'[]'"`
	Status      RegistrationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Notes       string             `json:"notes" gorm:"size:1000"`
	Version     int                `json:"version" gorm:"not null;default:1"`
}

// TableName returns the table name for Registration
func (Registration) TableName() string {
	return "registrations"
}

// Clone returns a deep copy of the registration
func (r *Registration) Clone() *Registration {
	if r == nil {
		return nil
	}
	out := *r
	if r.Disciplines != nil {
		out.Disciplines = make(DisciplineEntries, len(r.Disciplines))
		for i, e := range r.Disciplines {
			out.Disciplines[i] = e.Clone()
		}
	}
	return &out
}

// FindDiscipline returns the index of the entry with the given name or -1
func (r *Registration) FindDiscipline(name string) int {
	for i, e := range r.Disciplines {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// FindByDisciplineID returns the index of the entry with the given discipline id or -1
func (r *Registration) FindByDisciplineID(disciplineID string) int {
	for i, e := range r.Disciplines {
		if e.DisciplineID == disciplineID {
			return i
		}
	}
	return -1
}

// FindByInviteCode returns the index of the entry carrying the invite code or -1
func (r *Registration) FindByInviteCode(code string) int {
	for i, e := range r.Disciplines {
		if e.InviteCode != nil && *e.InviteCode == code {
			return i
		}
	}
	return -1
}

// PutDiscipline replaces the entry with the same DisciplineID or appends it
func (r *Registration) PutDiscipline(entry DisciplineEntry) {
	if i := r.FindByDisciplineID(entry.DisciplineID); i >= 0 && entry.DisciplineID != "" {
		r.Disciplines[i] = entry
		return
	}
	r.Disciplines = append(r.Disciplines, entry)
}

// RemoveDiscipline drops the entry at index i
func (r *Registration) RemoveDiscipline(i int) {
	if i < 0 || i >= len(r.Disciplines) {
		return
	}
	r.Disciplines = append(r.Disciplines[:i:i], r.Disciplines[i+1:]...)
}
