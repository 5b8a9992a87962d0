package repository

import (
	"context"

	"competition-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RegistrationRepositoryInterface is the per-record store the roster engine propagates through.
// Each call touches a single registration; there are no multi-record transactions.
type RegistrationRepositoryInterface interface {
	FindByEventAndStudent(ctx context.Context, eventID, studentID uuid.UUID) (*models.Registration, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Registration, error)
	FindByInviteCode(ctx context.Context, inviteCode string) (*models.Registration, error)
	FindAllByInviteCode(ctx context.Context, inviteCode string) ([]models.Registration, error)
	InviteCodeExists(ctx context.Context, inviteCode string) (bool, error)
	Save(ctx context.Context, registration *models.Registration) error
	Upsert(ctx context.Context, eventID, studentID uuid.UUID, entry models.DisciplineEntry) (*models.Registration, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventRepositoryInterface defines the interface for event catalog operations
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetByName(ctx context.Context, name string) (*models.Event, error)
	CreateDiscipline(ctx context.Context, discipline *models.Discipline) error
	GetDiscipline(ctx context.Context, eventID uuid.UUID, name string) (*models.Discipline, error)
}

// StudentRepositoryInterface defines the interface for student directory operations
type StudentRepositoryInterface interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
