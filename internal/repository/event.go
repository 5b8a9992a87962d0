package repository

import (
	"context"
	"errors"

	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events and their disciplines
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// GetByName retrieves an event by name
func (r *EventRepository) GetByName(ctx context.Context, name string) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// CreateDiscipline adds a discipline to an event
func (r *EventRepository) CreateDiscipline(ctx context.Context, discipline *models.Discipline) error {
	err := r.db.WithContext(ctx).Create(discipline).Error
	if isUniqueViolation(err) {
		return apperrors.NewConflictError("discipline", "for this event")
	}
	return err
}

// GetDiscipline retrieves a discipline of an event by name
func (r *EventRepository) GetDiscipline(ctx context.Context, eventID uuid.UUID, name string) (*models.Discipline, error) {
	var discipline models.Discipline
	err := r.db.WithContext(ctx).First(&discipline, "event_id = ? AND name = ?", eventID, name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDisciplineNotFound
		}
		return nil, err
	}
	return &discipline, nil
}
