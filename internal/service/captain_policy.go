package service

import (
	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"

	"github.com/google/uuid"
)

// CaptainPolicy keeps exactly one captain on every non-empty roster
type CaptainPolicy struct{}

// NewCaptainPolicy creates a new captain policy
func NewCaptainPolicy() *CaptainPolicy {
	return &CaptainPolicy{}
}

// ValidateSingleCaptain is true iff exactly one member is captain; an empty roster passes
func (p *CaptainPolicy) ValidateSingleCaptain(roster *models.TeamRoster) bool {
	if roster.Size() == 0 {
		return true
	}
	captains := 0
	for _, m := range roster.Members {
		if m.Captain {
			captains++
		}
	}
	return captains == 1
}

// ReassignOnRemoval drops the student from the roster and, if they were captain,
// promotes the first remaining member in stable order
func (p *CaptainPolicy) ReassignOnRemoval(roster *models.TeamRoster, removedID uuid.UUID) *models.TeamRoster {
	out := roster.Clone()
	idx := out.IndexOf(removedID)
	if idx < 0 {
		return out
	}
	wasCaptain := out.Members[idx].Captain
	out.Members = append(out.Members[:idx:idx], out.Members[idx+1:]...)
	if wasCaptain && out.Size() > 0 {
		out.Members[0].Captain = true
	}
	return out
}

// AssignInitialCaptain makes the initiator captain and clears the flag on everyone else.
// The initiator must already be on the roster.
func (p *CaptainPolicy) AssignInitialCaptain(roster *models.TeamRoster, initiatorID uuid.UUID) (*models.TeamRoster, error) {
	if !roster.Has(initiatorID) {
		return nil, apperrors.ErrInitiatorNotOnRoster
	}
	out := roster.Clone()
	for i := range out.Members {
		out.Members[i].Captain = out.Members[i].StudentID == initiatorID
	}
	return out, nil
}
