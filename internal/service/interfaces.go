package service

import (
	"context"

	"competition-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RosterEngineInterface defines the interface for team roster operations
type RosterEngineInterface interface {
	CreateRegistration(ctx context.Context, eventID, studentID uuid.UUID, req *CreateRegistrationRequest) (*models.Registration, *PropagationReport, error)
	JoinByInviteCode(ctx context.Context, studentID uuid.UUID, inviteCode string) (*models.Registration, error)
	LeaveRegistration(ctx context.Context, registrationID, actorID uuid.UUID) (*PropagationReport, error)
	RemoveMember(ctx context.Context, registrationID, actorID, memberID uuid.UUID, disciplineName string) (*PropagationReport, error)
	SyncTeam(ctx context.Context, eventID uuid.UUID, disciplineName string, initiatorID uuid.UUID, updates SyncUpdates) (*SyncResult, error)
	GetTeam(ctx context.Context, inviteCode string) (*TeamView, error)
}

var _ RosterEngineInterface = (*TeamRosterEngine)(nil)
