package service

import (
	"context"

	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"
	"competition-registration-backend/internal/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var errReplicaMissing = apperrors.NewNotFoundError("team replica")

// SyncUpdates are uniform changes applied to every copy of a team entry during SyncTeam
type SyncUpdates struct {
	TeamName *string `json:"team_name,omitempty" validate:"omitnil,min=1,max=100"`
	Group    *string `json:"group,omitempty" validate:"omitnil,max=50"`
}

// IsEmpty reports whether no update was requested
func (u SyncUpdates) IsEmpty() bool {
	return u.TeamName == nil && u.Group == nil
}

// SyncResult counts replica writes performed by SyncTeam
type SyncResult struct {
	Created int                  `json:"created"`
	Updated int                  `json:"updated"`
	Removed int                  `json:"removed"`
	Failed  []PropagationFailure `json:"failed"`
}

// TeamView is the read model of one team as seen through its owner copy
type TeamView struct {
	InviteCode   string                `json:"invite_code"`
	EventID      uuid.UUID             `json:"event_id"`
	DisciplineID string                `json:"discipline_id"`
	Discipline   string                `json:"discipline"`
	Group        string                `json:"group,omitempty"`
	Kind         models.DisciplineKind `json:"kind"`
	Team         *models.TeamRoster    `json:"team"`
	MaxTeamSize  int                   `json:"max_team_size"`
	State        models.TeamState      `json:"state"`
	Replicas     int                   `json:"replicas"`
}

// LeaveRegistration cancels the actor's whole registration. Before the record is deleted,
// the actor is removed from the owner copy of every team they belong to and each remaining
// member's copy is rewritten from the resulting roster.
func (e *TeamRosterEngine) LeaveRegistration(ctx context.Context, registrationID, actorID uuid.UUID) (report *PropagationReport, err error) {
	ctx, span := e.start(ctx, opLeave,
		attribute.String("registration.id", registrationID.String()),
		attribute.String("student.id", actorID.String()))
	defer func() { e.finish(span, opLeave, report, err) }()

	registration, err := e.store.FindByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if registration.StudentID != actorID {
		return nil, apperrors.ErrNotRegistrationOwner
	}

	report = newPropagationReport()
	for _, entry := range registration.Disciplines {
		if !entry.IsTeam() || entry.InviteCode == nil {
			continue
		}
		source := e.currentEntry(ctx, entry)
		source.Team = e.runOrder.Renumber(e.captains.ReassignOnRemoval(source.Team, actorID))
		if err := e.propagate(ctx, registration.EventID, source, actorID, report); err != nil {
			return report, err
		}
	}

	if err := e.store.Delete(ctx, registration.ID); err != nil {
		return report, err
	}
	report.Deleted = append(report.Deleted, actorID)

	e.logReport(ctx, opLeave, report)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id": registration.EventID,
		"updated":  len(report.Updated),
		"failed":   len(report.Failed),
	}).Infof("registration cancelled")
	return report, nil
}

// RemoveMember lets a captain drop a non-captain member from a team. The captain's copy is
// written first; the removed student loses the entry, or the whole registration when it
// was their only discipline.
func (e *TeamRosterEngine) RemoveMember(ctx context.Context, registrationID, actorID, memberID uuid.UUID, disciplineName string) (report *PropagationReport, err error) {
	ctx, span := e.start(ctx, opRemove,
		attribute.String("registration.id", registrationID.String()),
		attribute.String("member.id", memberID.String()),
		attribute.String("discipline", disciplineName))
	defer func() { e.finish(span, opRemove, report, err) }()

	registration, err := e.store.FindByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if registration.StudentID != actorID {
		return nil, apperrors.ErrNotRegistrationOwner
	}
	idx := registration.FindDiscipline(disciplineName)
	if idx < 0 {
		return nil, apperrors.ErrDisciplineNotFound
	}
	entry := registration.Disciplines[idx]
	if !entry.IsTeam() || entry.InviteCode == nil {
		return nil, apperrors.ErrNotTeamDiscipline
	}
	if !entry.Team.IsCaptain(actorID) {
		return nil, apperrors.ErrCaptainOnly
	}
	if !entry.Team.Has(memberID) {
		return nil, apperrors.ErrMemberNotFound
	}
	if entry.Team.IsCaptain(memberID) {
		return nil, apperrors.ErrCannotRemoveCaptain
	}

	source := entry.Clone()
	source.Team = e.runOrder.Renumber(e.captains.ReassignOnRemoval(source.Team, memberID))
	registration.Disciplines[idx] = source.Clone()
	if err := e.store.Save(ctx, registration); err != nil {
		return nil, err
	}

	report = newPropagationReport()
	report.Updated = append(report.Updated, actorID)
	if err := e.propagate(ctx, registration.EventID, source, actorID, report); err != nil {
		return report, err
	}

	removed, err := e.store.FindByEventAndStudent(ctx, registration.EventID, memberID)
	switch {
	case apperrors.IsNotFound(err):
	case err != nil:
		report.fail(memberID, uuid.Nil, source.Code(), err)
	default:
		e.stripEntry(ctx, removed, source.Code(), report)
	}

	e.logReport(ctx, opRemove, report)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invite_code": source.Code(),
		"member_id":   memberID,
	}).Infof("team member removed")
	return report, nil
}

// currentEntry returns the owner's copy of a team entry, which is written first by every
// fan-out, falling back to the given copy when the owner cannot be read
func (e *TeamRosterEngine) currentEntry(ctx context.Context, entry models.DisciplineEntry) models.DisciplineEntry {
	owner, err := e.store.FindByInviteCode(ctx, entry.Code())
	if err != nil {
		return entry.Clone()
	}
	i := owner.FindByInviteCode(entry.Code())
	if i < 0 || !owner.Disciplines[i].IsTeam() {
		return entry.Clone()
	}
	return owner.Disciplines[i].Clone()
}

// propagate writes source into the copy held by every roster member except skip. Members
// without a copy are reported as failures so the team gets repaired.
func (e *TeamRosterEngine) propagate(ctx context.Context, eventID uuid.UUID, source models.DisciplineEntry, skip uuid.UUID, report *PropagationReport) error {
	code := source.Code()
	replicas, err := e.store.FindAllByInviteCode(ctx, code)
	if err != nil {
		return err
	}
	byStudent := make(map[uuid.UUID]models.Registration, len(replicas))
	for _, r := range replicas {
		if r.EventID == eventID {
			byStudent[r.StudentID] = r
		}
	}

	for _, memberID := range source.Team.StudentIDs() {
		if memberID == skip {
			continue
		}
		replica, ok := byStudent[memberID]
		if !ok {
			report.fail(memberID, uuid.Nil, code, errReplicaMissing)
			continue
		}
		i := replica.FindByInviteCode(code)
		replica.Disciplines[i] = source.Clone()
		if err := e.store.Save(ctx, &replica); err != nil {
			report.fail(memberID, replica.ID, code, err)
			continue
		}
		report.Updated = append(report.Updated, memberID)
	}
	return nil
}

// stripEntry drops the team entry from a registration, deleting the record when nothing is left
func (e *TeamRosterEngine) stripEntry(ctx context.Context, registration *models.Registration, inviteCode string, report *PropagationReport) bool {
	i := registration.FindByInviteCode(inviteCode)
	if i < 0 {
		return false
	}
	if len(registration.Disciplines) == 1 {
		if err := e.store.Delete(ctx, registration.ID); err != nil {
			report.fail(registration.StudentID, registration.ID, inviteCode, err)
			return false
		}
		report.Deleted = append(report.Deleted, registration.StudentID)
		return true
	}
	registration.RemoveDiscipline(i)
	if err := e.store.Save(ctx, registration); err != nil {
		report.fail(registration.StudentID, registration.ID, inviteCode, err)
		return false
	}
	report.Updated = append(report.Updated, registration.StudentID)
	return true
}

// SyncTeam rewrites every replica of the team from its owner copy, and members without a copy
// get one. When the owner runs it, copies held by students no longer on the roster are also
// stripped. Any other member only refreshes copies from the owner's roster and leaves the owner
// copy alone. Updates are captain only and applied once to the source before fan-out. Running
// it twice with the same updates leaves the same state.
func (e *TeamRosterEngine) SyncTeam(ctx context.Context, eventID uuid.UUID, disciplineName string, initiatorID uuid.UUID, updates SyncUpdates) (result *SyncResult, err error) {
	ctx, span := e.start(ctx, opSync,
		attribute.String("event.id", eventID.String()),
		attribute.String("discipline", disciplineName),
		attribute.String("student.id", initiatorID.String()))
	var report *PropagationReport
	defer func() { e.finish(span, opSync, report, err) }()

	if err := e.validator.Struct(updates); err != nil {
		return nil, apperrors.NewValidationError("updates", err.Error())
	}

	registration, err := e.store.FindByEventAndStudent(ctx, eventID, initiatorID)
	if err != nil {
		return nil, err
	}
	idx := registration.FindDiscipline(disciplineName)
	if idx < 0 {
		return nil, apperrors.ErrDisciplineNotFound
	}
	own := registration.Disciplines[idx]
	if !own.IsTeam() || own.InviteCode == nil {
		return nil, apperrors.ErrNotTeamDiscipline
	}
	if !own.Team.Has(initiatorID) {
		return nil, apperrors.ErrNotTeamMember
	}

	source, ownerID, err := e.syncSource(ctx, registration, own)
	if err != nil {
		return nil, err
	}
	isOwner := ownerID == registration.ID
	if !source.Team.Has(initiatorID) {
		return nil, apperrors.ErrNotTeamMember
	}
	if !updates.IsEmpty() && !(isOwner && source.Team.IsCaptain(initiatorID)) {
		return nil, apperrors.ErrCaptainOnly
	}
	if err := source.Team.ValidateShape(); err != nil {
		return nil, apperrors.NewValidationError("team", err.Error())
	}
	if !e.captains.ValidateSingleCaptain(source.Team) {
		return nil, apperrors.NewValidationError("team", "roster must have exactly one captain")
	}

	if updates.TeamName != nil {
		source.Team.Name = *updates.TeamName
	}
	if updates.Group != nil {
		source.Group = *updates.Group
	}
	source.Team = e.runOrder.Renumber(source.Team)

	registration.Disciplines[idx] = source.Clone()
	if err := e.store.Save(ctx, registration); err != nil {
		return nil, err
	}

	code := source.Code()
	replicas, err := e.store.FindAllByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}
	byStudent := make(map[uuid.UUID]models.Registration, len(replicas))
	for _, r := range replicas {
		byStudent[r.StudentID] = r
	}

	report = newPropagationReport()
	result = &SyncResult{}
	for _, memberID := range source.Team.StudentIDs() {
		if memberID == initiatorID {
			continue
		}
		replica, ok := byStudent[memberID]
		if !ok {
			if e.createReplica(ctx, eventID, memberID, source, report) {
				result.Created++
			}
			continue
		}
		if replica.ID == ownerID {
			continue
		}
		i := replica.FindByInviteCode(code)
		replica.Disciplines[i] = source.Clone()
		if err := e.store.Save(ctx, &replica); err != nil {
			report.fail(memberID, replica.ID, code, err)
			continue
		}
		report.Updated = append(report.Updated, memberID)
		result.Updated++
	}

	if isOwner {
		for studentID, replica := range byStudent {
			if studentID == initiatorID || source.Team.Has(studentID) {
				continue
			}
			if e.stripEntry(ctx, &replica, code, report) {
				result.Removed++
			}
		}
	}

	result.Failed = report.Failed
	e.logReport(ctx, opSync, report)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invite_code": code,
		"owner":       isOwner,
		"created":     result.Created,
		"updated":     result.Updated,
		"removed":     result.Removed,
	}).Infof("team synced")
	return result, nil
}

// syncSource picks the entry a sync propagates and the id of the owner record. The initiator's
// copy is used when they own the team, or with a nil owner id when the owner copy is unusable.
func (e *TeamRosterEngine) syncSource(ctx context.Context, registration *models.Registration, own models.DisciplineEntry) (models.DisciplineEntry, uuid.UUID, error) {
	owner, err := e.store.FindByInviteCode(ctx, own.Code())
	if err != nil {
		return models.DisciplineEntry{}, uuid.Nil, err
	}
	if owner.ID == registration.ID {
		return own.Clone(), owner.ID, nil
	}
	i := owner.FindByInviteCode(own.Code())
	if i < 0 || !owner.Disciplines[i].IsTeam() {
		return own.Clone(), uuid.Nil, nil
	}
	return owner.Disciplines[i].Clone(), owner.ID, nil
}

// createReplica gives a roster member without a copy their entry, unless they are already
// registered for the discipline with another team
func (e *TeamRosterEngine) createReplica(ctx context.Context, eventID, memberID uuid.UUID, source models.DisciplineEntry, report *PropagationReport) bool {
	code := source.Code()
	registered, err := e.conflicts.AlreadyRegisteredForDiscipline(ctx, eventID, memberID, source.Name)
	if err != nil {
		report.fail(memberID, uuid.Nil, code, err)
		return false
	}
	if registered {
		report.fail(memberID, uuid.Nil, code, apperrors.ErrAlreadyRegistered)
		return false
	}
	if _, err := e.store.Upsert(ctx, eventID, memberID, source.Clone()); err != nil {
		report.fail(memberID, uuid.Nil, code, err)
		return false
	}
	report.Updated = append(report.Updated, memberID)
	return true
}

// GetTeam returns the team behind an invite code as recorded in its owner copy
func (e *TeamRosterEngine) GetTeam(ctx context.Context, inviteCode string) (view *TeamView, err error) {
	ctx, span := e.start(ctx, opGet, attribute.String("team.invite_code", inviteCode))
	defer func() { e.finish(span, opGet, nil, err) }()

	replicas, err := e.store.FindAllByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	owner, err := e.store.FindByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	i := owner.FindByInviteCode(inviteCode)
	if i < 0 || !owner.Disciplines[i].IsTeam() {
		return nil, apperrors.ErrInviteCodeNotFound
	}
	entry := owner.Disciplines[i]

	limit := e.catalog.MaxTeamSize(nil)
	if discipline, err := e.catalog.Discipline(ctx, owner.EventID, entry.Name); err == nil {
		limit = e.catalog.MaxTeamSize(discipline)
	}

	return &TeamView{
		InviteCode:   inviteCode,
		EventID:      owner.EventID,
		DisciplineID: entry.DisciplineID,
		Discipline:   entry.Name,
		Group:        entry.Group,
		Kind:         entry.Kind,
		Team:         entry.Team.Clone(),
		MaxTeamSize:  limit,
		State:        entry.Team.State(limit),
		Replicas:     len(replicas),
	}, nil
}
