package service

import (
	"context"
	"fmt"

	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"
	"competition-registration-backend/internal/repository"

	"github.com/google/uuid"
)

// Catalog answers event, discipline and student directory questions for the roster engine
type Catalog struct {
	events             repository.EventRepositoryInterface
	students           repository.StudentRepositoryInterface
	defaultMaxTeamSize int
}

// NewCatalog creates a new catalog; defaultMaxTeamSize applies to disciplines without their own limit
func NewCatalog(events repository.EventRepositoryInterface, students repository.StudentRepositoryInterface, defaultMaxTeamSize int) *Catalog {
	return &Catalog{
		events:             events,
		students:           students,
		defaultMaxTeamSize: defaultMaxTeamSize,
	}
}

// OpenEvent returns the event if it exists and still accepts registrations
func (c *Catalog) OpenEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	event, err := c.events.GetByID(ctx, eventID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, apperrors.NewPersistenceError("load event", err)
	}
	if !event.RegistrationOpen {
		return nil, apperrors.ErrRegistrationClosed
	}
	return event, nil
}

// Discipline returns the named discipline of an event
func (c *Catalog) Discipline(ctx context.Context, eventID uuid.UUID, name string) (*models.Discipline, error) {
	discipline, err := c.events.GetDiscipline(ctx, eventID, name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, apperrors.NewPersistenceError("load discipline", err)
	}
	return discipline, nil
}

// MaxTeamSize resolves the effective roster limit of a discipline
func (c *Catalog) MaxTeamSize(discipline *models.Discipline) int {
	if discipline != nil && discipline.MaxTeamSize > 0 {
		return discipline.MaxTeamSize
	}
	return c.defaultMaxTeamSize
}

// RequireStudents fails with a NotFoundError naming the first id missing from the directory
func (c *Catalog) RequireStudents(ctx context.Context, ids []uuid.UUID) error {
	existing, err := c.students.GetExistingIDs(ctx, ids)
	if err != nil {
		return apperrors.NewPersistenceError("load students", err)
	}
	known := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("student %s", id))
		}
	}
	return nil
}
