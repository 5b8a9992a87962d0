package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a competition students register for
type Event struct {
	BaseModel
	Name             string    `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	RegistrationOpen bool      `json:"registration_open" gorm:"default:true"`
	StartsAt         time.Time `json:"starts_at"`

	// Relationships
	Disciplines []Discipline `json:"disciplines,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// Discipline is a named competitive category inside an event with its own team-size rule
type Discipline struct {
	BaseModel
	EventID     uuid.UUID      `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_disciplines_event_name" validate:"required"`
	Name        string         `json:"name" gorm:"size:100;not null;uniqueIndex:idx_disciplines_event_name" validate:"required,max=100"`
	Kind        DisciplineKind `json:"kind" gorm:"type:varchar(20);not null;default:'individual'" validate:"required,oneof=individual relay group"`
	Group       string         `json:"group" gorm:"size:50"`
	MaxTeamSize int            `json:"max_team_size" gorm:"not null;default:0"` // 0 falls back to the configured default
}

// TableName returns the table name for Discipline
func (Discipline) TableName() string {
	return "disciplines"
}

// Student is an entry of the student directory
type Student struct {
	BaseModel
	FullName string `json:"full_name" gorm:"size:200;not null" validate:"required,max=200"`
	Grade    string `json:"grade" gorm:"size:10"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}
