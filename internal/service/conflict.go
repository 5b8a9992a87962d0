package service

import (
	"context"

	apperrors "competition-registration-backend/internal/errors"
	"competition-registration-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ConflictDetector answers whether a student already holds an entry for a discipline
type ConflictDetector struct {
	store repository.RegistrationRepositoryInterface
}

// NewConflictDetector creates a new conflict detector
func NewConflictDetector(store repository.RegistrationRepositoryInterface) *ConflictDetector {
	return &ConflictDetector{store: store}
}

// AlreadyRegisteredForDiscipline loads the student's registration for the event, if any,
// and checks its entries by discipline name
func (d *ConflictDetector) AlreadyRegisteredForDiscipline(ctx context.Context, eventID, studentID uuid.UUID, disciplineName string) (bool, error) {
	registration, err := d.store.FindByEventAndStudent(ctx, eventID, studentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return registration.FindDiscipline(disciplineName) >= 0, nil
}

// ConflictingStudents checks every student concurrently and returns those already registered
// for the discipline, in input order
func (d *ConflictDetector) ConflictingStudents(ctx context.Context, eventID uuid.UUID, studentIDs []uuid.UUID, disciplineName string) ([]uuid.UUID, error) {
	found := make([]bool, len(studentIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range studentIDs {
		g.Go(func() error {
			registered, err := d.AlreadyRegisteredForDiscipline(gctx, eventID, id, disciplineName)
			if err != nil {
				return err
			}
			found[i] = registered
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var conflicts []uuid.UUID
	for i, registered := range found {
		if registered {
			conflicts = append(conflicts, studentIDs[i])
		}
	}
	return conflicts, nil
}
