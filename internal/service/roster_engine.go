package service

import (
	"context"
	"errors"
	"fmt"

	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"
	"competition-registration-backend/internal/logger"
	"competition-registration-backend/internal/metrics"
	"competition-registration-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	opCreate = "create_registration"
	opJoin   = "join_by_invite_code"
	opLeave  = "leave_registration"
	opRemove = "remove_member"
	opSync   = "sync_team"
	opGet    = "get_team"

	joinAttempts = 2
)

// RepairScheduler accepts teams whose replicas could not all be written
type RepairScheduler interface {
	Schedule(inviteCode string)
}

// MemberRequest is one listed team member. RunOrder is only meaningful for relays;
// zero means "after the members that have one".
type MemberRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	RunOrder  int       `json:"run_order,omitempty" validate:"min=0"`
}

// TeamRequest describes the team formed for a relay or group discipline
type TeamRequest struct {
	Name    string          `json:"name" validate:"required,max=100"`
	Members []MemberRequest `json:"members" validate:"dive"`
}

// DisciplineRequest selects one discipline of the event
type DisciplineRequest struct {
	Name string       `json:"name" validate:"required,max=100"`
	Team *TeamRequest `json:"team,omitempty"`
}

// CreateRegistrationRequest represents the request to register a student for an event
type CreateRegistrationRequest struct {
	Disciplines []DisciplineRequest `json:"disciplines" validate:"required,min=1,dive"`
	Notes       string              `json:"notes,omitempty" validate:"max=1000"`
}

// PropagationFailure is one sibling record that could not be written
type PropagationFailure struct {
	StudentID      uuid.UUID `json:"student_id"`
	RegistrationID uuid.UUID `json:"registration_id,omitempty"`
	InviteCode     string    `json:"invite_code,omitempty"`
	Error          string    `json:"error"`
	Err            error     `json:"-"`
}

// PropagationReport lists what happened to each sibling record of a fan-out write
type PropagationReport struct {
	Updated []uuid.UUID          `json:"updated"`
	Deleted []uuid.UUID          `json:"deleted,omitempty"`
	Failed  []PropagationFailure `json:"failed"`
}

func newPropagationReport() *PropagationReport {
	return &PropagationReport{
		Updated: []uuid.UUID{},
		Failed:  []PropagationFailure{},
	}
}

// OK reports whether every sibling write succeeded
func (r *PropagationReport) OK() bool {
	return len(r.Failed) == 0
}

func (r *PropagationReport) fail(studentID, registrationID uuid.UUID, inviteCode string, err error) {
	r.Failed = append(r.Failed, PropagationFailure{
		StudentID:      studentID,
		RegistrationID: registrationID,
		InviteCode:     inviteCode,
		Error:          err.Error(),
		Err:            err,
	})
}

// failedCodes lists the distinct invite codes with at least one failed write
func (r *PropagationReport) failedCodes() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, f := range r.Failed {
		if f.InviteCode == "" {
			continue
		}
		if _, ok := seen[f.InviteCode]; ok {
			continue
		}
		seen[f.InviteCode] = struct{}{}
		out = append(out, f.InviteCode)
	}
	return out
}

// TeamRosterEngine coordinates every mutation of a team's replicated roster. Each operation
// picks one authoritative copy, derives the new roster from it, writes that record first and
// then fans out to siblings one record at a time.
type TeamRosterEngine struct {
	store     repository.RegistrationRepositoryInterface
	catalog   *Catalog
	codes     *InviteCodeGenerator
	captains  *CaptainPolicy
	runOrder  *RunOrderAssigner
	conflicts *ConflictDetector
	repairs   RepairScheduler
	metrics   *metrics.RosterMetrics
	tracer    trace.Tracer
	validator *validator.Validate
}

// NewTeamRosterEngine creates a new roster engine. repairs, m and tracer may be nil.
func NewTeamRosterEngine(
	store repository.RegistrationRepositoryInterface,
	catalog *Catalog,
	codes *InviteCodeGenerator,
	repairs RepairScheduler,
	m *metrics.RosterMetrics,
	tracer trace.Tracer,
	validator *validator.Validate,
) *TeamRosterEngine {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("roster-engine")
	}
	return &TeamRosterEngine{
		store:     store,
		catalog:   catalog,
		codes:     codes,
		captains:  NewCaptainPolicy(),
		runOrder:  NewRunOrderAssigner(),
		conflicts: NewConflictDetector(store),
		repairs:   repairs,
		metrics:   m,
		tracer:    tracer,
		validator: validator,
	}
}

func (e *TeamRosterEngine) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, "TeamRosterEngine."+operation, trace.WithAttributes(attrs...))
}

func (e *TeamRosterEngine) finish(span trace.Span, operation string, report *PropagationReport, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if report != nil {
		span.SetAttributes(
			attribute.Int("replicas.updated", len(report.Updated)),
			attribute.Int("replicas.failed", len(report.Failed)),
		)
		e.metrics.AddPropagationFailures(operation, len(report.Failed))
		// SyncTeam is the repair itself; the worker decides whether to requeue it
		if e.repairs != nil && operation != opSync {
			for _, code := range report.failedCodes() {
				e.repairs.Schedule(code)
			}
		}
	}
	e.metrics.ObserveOperation(operation, err)
	span.End()
}

type plannedTeam struct {
	entry     models.DisciplineEntry
	coMembers []uuid.UUID
}

// CreateRegistration registers the student for the listed disciplines. For every team
// discipline the student becomes captain, a fresh discipline id and invite code are minted,
// and each listed co-member receives an identical copy of the entry.
func (e *TeamRosterEngine) CreateRegistration(ctx context.Context, eventID, studentID uuid.UUID, req *CreateRegistrationRequest) (_ *models.Registration, report *PropagationReport, err error) {
	ctx, span := e.start(ctx, opCreate,
		attribute.String("event.id", eventID.String()),
		attribute.String("student.id", studentID.String()))
	defer func() { e.finish(span, opCreate, report, err) }()

	if err := e.validator.Struct(req); err != nil {
		return nil, nil, apperrors.NewValidationError("disciplines", err.Error())
	}

	event, err := e.catalog.OpenEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	registration, err := e.store.FindByEventAndStudent(ctx, event.ID, studentID)
	switch {
	case apperrors.IsNotFound(err):
		registration = &models.Registration{
			EventID:     event.ID,
			StudentID:   studentID,
			Disciplines: models.DisciplineEntries{},
			Status:      models.RegistrationStatusPending,
		}
	case err != nil:
		return nil, nil, err
	}
	if req.Notes != "" {
		registration.Notes = req.Notes
	}

	students := []uuid.UUID{studentID}
	seenNames := make(map[string]struct{}, len(req.Disciplines))
	var entries []models.DisciplineEntry
	var teams []plannedTeam

	for _, dr := range req.Disciplines {
		if _, dup := seenNames[dr.Name]; dup {
			return nil, nil, apperrors.NewValidationError("disciplines", fmt.Sprintf("discipline %q listed more than once", dr.Name))
		}
		seenNames[dr.Name] = struct{}{}

		discipline, err := e.catalog.Discipline(ctx, event.ID, dr.Name)
		if err != nil {
			return nil, nil, err
		}
		if registration.FindDiscipline(discipline.Name) >= 0 {
			return nil, nil, apperrors.ErrAlreadyRegistered
		}

		entry := models.DisciplineEntry{
			DisciplineID: uuid.NewString(),
			Name:         discipline.Name,
			Group:        discipline.Group,
			Kind:         discipline.Kind,
		}

		if !discipline.Kind.IsTeam() {
			if dr.Team != nil {
				return nil, nil, apperrors.ErrNotTeamDiscipline
			}
			entries = append(entries, entry)
			continue
		}
		if dr.Team == nil {
			return nil, nil, apperrors.NewValidationError("team", fmt.Sprintf("discipline %q requires a team", discipline.Name))
		}

		roster, err := e.buildRoster(discipline, dr.Team, studentID)
		if err != nil {
			return nil, nil, err
		}
		limit := e.catalog.MaxTeamSize(discipline)
		if roster.Size() > limit {
			return nil, nil, apperrors.NewCapacityError("team", limit)
		}

		coMembers := make([]uuid.UUID, 0, roster.Size()-1)
		for _, id := range roster.StudentIDs() {
			if id != studentID {
				coMembers = append(coMembers, id)
			}
		}
		students = append(students, coMembers...)

		entry.Team = roster
		teams = append(teams, plannedTeam{entry: entry, coMembers: coMembers})
	}

	if err := e.catalog.RequireStudents(ctx, students); err != nil {
		return nil, nil, err
	}

	for _, team := range teams {
		conflicting, err := e.conflicts.ConflictingStudents(ctx, event.ID, team.coMembers, team.entry.Name)
		if err != nil {
			return nil, nil, err
		}
		if len(conflicting) > 0 {
			return nil, nil, apperrors.NewConflictError("team member",
				fmt.Sprintf("student %s already registered for %s", conflicting[0], team.entry.Name))
		}
	}

	minted := make(map[string]struct{}, len(teams))
	lookup := func(ctx context.Context, code string) (bool, error) {
		if _, ok := minted[code]; ok {
			return true, nil
		}
		return e.store.InviteCodeExists(ctx, code)
	}
	for i := range teams {
		code, err := e.codes.GenerateUnique(ctx, lookup)
		if err != nil {
			return nil, nil, err
		}
		minted[code] = struct{}{}
		teams[i].entry.InviteCode = &code
		entries = append(entries, teams[i].entry)
	}

	for _, entry := range entries {
		registration.PutDiscipline(entry.Clone())
	}
	if err := e.store.Save(ctx, registration); err != nil {
		return nil, nil, err
	}

	report = newPropagationReport()
	for _, team := range teams {
		for _, memberID := range team.coMembers {
			replica, err := e.store.Upsert(ctx, event.ID, memberID, team.entry.Clone())
			if err != nil {
				report.fail(memberID, uuid.Nil, team.entry.Code(), err)
				continue
			}
			report.Updated = append(report.Updated, replica.StudentID)
		}
	}

	e.logReport(ctx, opCreate, report)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":    event.ID,
		"disciplines": len(entries),
		"teams":       len(teams),
	}).Infof("registration saved")

	return registration, report, nil
}

// buildRoster turns the requested team into a validated roster with the initiator as captain
func (e *TeamRosterEngine) buildRoster(discipline *models.Discipline, team *TeamRequest, initiatorID uuid.UUID) (*models.TeamRoster, error) {
	roster := &models.TeamRoster{Name: team.Name, Kind: discipline.Kind}
	seen := make(map[uuid.UUID]struct{}, len(team.Members)+1)
	for _, m := range team.Members {
		if _, dup := seen[m.StudentID]; dup {
			return nil, apperrors.ErrDuplicateTeamMember
		}
		seen[m.StudentID] = struct{}{}
		member, err := models.NewMember(discipline.Kind, m.StudentID, m.RunOrder, false)
		if err != nil {
			return nil, apperrors.NewValidationError("team", err.Error())
		}
		roster.Members = append(roster.Members, member)
	}
	if _, ok := seen[initiatorID]; !ok {
		initiator, err := models.NewMember(discipline.Kind, initiatorID, 0, false)
		if err != nil {
			return nil, apperrors.NewValidationError("team", err.Error())
		}
		roster.Members = append([]models.Member{initiator}, roster.Members...)
	}

	if err := roster.ValidateShape(); err != nil {
		return nil, apperrors.NewValidationError("team", err.Error())
	}

	roster, err := e.captains.AssignInitialCaptain(roster, initiatorID)
	if err != nil {
		return nil, err
	}
	return e.runOrder.Renumber(roster), nil
}

// JoinByInviteCode appends the student to the team behind the invite code and propagates
// the new roster. A roster that changes between read and commit is retried once.
func (e *TeamRosterEngine) JoinByInviteCode(ctx context.Context, studentID uuid.UUID, inviteCode string) (_ *models.Registration, err error) {
	ctx, span := e.start(ctx, opJoin,
		attribute.String("student.id", studentID.String()),
		attribute.String("team.invite_code", inviteCode))
	report := newPropagationReport()
	defer func() { e.finish(span, opJoin, report, err) }()

	for attempt := 1; attempt <= joinAttempts; attempt++ {
		registration, err := e.joinOnce(ctx, studentID, inviteCode, report)
		if !errors.Is(err, apperrors.ErrStaleRoster) {
			return registration, err
		}
		logger.WithContext(ctx).WithField("invite_code", inviteCode).Debugf("roster changed during join, attempt %d", attempt)
	}
	return nil, apperrors.ErrTeamCapacityExceeded
}

func (e *TeamRosterEngine) joinOnce(ctx context.Context, studentID uuid.UUID, inviteCode string, report *PropagationReport) (*models.Registration, error) {
	owner, err := e.store.FindByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	idx := owner.FindByInviteCode(inviteCode)
	if idx < 0 {
		return nil, apperrors.ErrInviteCodeNotFound
	}
	source := owner.Disciplines[idx].Clone()
	if !source.IsTeam() {
		return nil, apperrors.ErrNotTeamDiscipline
	}

	if _, err := e.catalog.OpenEvent(ctx, owner.EventID); err != nil {
		return nil, err
	}
	if err := e.catalog.RequireStudents(ctx, []uuid.UUID{studentID}); err != nil {
		return nil, err
	}
	if source.Team.Has(studentID) {
		return nil, apperrors.ErrAlreadyOnTeam
	}
	registered, err := e.conflicts.AlreadyRegisteredForDiscipline(ctx, owner.EventID, studentID, source.Name)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, apperrors.ErrAlreadyRegistered
	}

	discipline, err := e.catalog.Discipline(ctx, owner.EventID, source.Name)
	if err != nil {
		return nil, err
	}
	if discipline.Kind != source.Kind || source.Team.Kind != source.Kind {
		return nil, apperrors.ErrTeamKindMismatch
	}
	limit := e.catalog.MaxTeamSize(discipline)
	if source.Team.Size() >= limit {
		return nil, apperrors.NewCapacityError("team", limit)
	}

	snapshot := source.Team.Clone()
	runOrder := 0
	if source.Kind == models.DisciplineKindRelay {
		runOrder = e.runOrder.NextOrder(source.Team)
	}
	joiner, err := models.NewMember(source.Kind, studentID, runOrder, false)
	if err != nil {
		return nil, apperrors.NewValidationError("team", err.Error())
	}
	source.Team.Members = append(source.Team.Members, joiner)
	source.Team = e.runOrder.Renumber(source.Team)

	// re-read immediately before the first write
	replicas, err := e.store.FindAllByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	if rosterChanged(owner.ID, inviteCode, snapshot, replicas) {
		return nil, apperrors.ErrStaleRoster
	}

	// The joiner's copy and the owner's copy commit together: the joiner first, then the
	// owner as first read, so its version check fails if anything moved since. The joiner's
	// copy is undone when the owner write fails.
	registration, err := e.store.Upsert(ctx, owner.EventID, studentID, source.Clone())
	if err != nil {
		return nil, err
	}
	owner.Disciplines[idx] = source.Clone()
	if err := e.store.Save(ctx, owner); err != nil {
		e.undoJoin(ctx, registration, inviteCode, report)
		return nil, err
	}
	report.Updated = append(report.Updated, owner.StudentID)

	for _, replica := range replicas {
		if replica.ID == owner.ID || replica.StudentID == studentID {
			continue
		}
		i := replica.FindByInviteCode(inviteCode)
		replica.Disciplines[i] = source.Clone()
		if err := e.store.Save(ctx, &replica); err != nil {
			report.fail(replica.StudentID, replica.ID, inviteCode, err)
			continue
		}
		report.Updated = append(report.Updated, replica.StudentID)
	}
	e.logReport(ctx, opJoin, report)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invite_code": inviteCode,
		"team_size":   source.Team.Size(),
	}).Infof("student joined team")
	return registration, nil
}

// undoJoin takes the team entry back out of the joiner's registration. A failed undo leaves
// an orphaned copy, which is reported so the owner's next sync strips it.
func (e *TeamRosterEngine) undoJoin(ctx context.Context, joined *models.Registration, inviteCode string, report *PropagationReport) {
	i := joined.FindByInviteCode(inviteCode)
	if i < 0 {
		return
	}
	var err error
	if len(joined.Disciplines) == 1 {
		err = e.store.Delete(ctx, joined.ID)
	} else {
		joined.RemoveDiscipline(i)
		err = e.store.Save(ctx, joined)
	}
	if err != nil {
		report.fail(joined.StudentID, joined.ID, inviteCode, err)
		logger.WithContext(ctx).WithField("invite_code", inviteCode).WithError(err).Warnf("could not undo join")
	}
}

// rosterChanged reports whether the owner's copy moved on since snapshot was read, so a join
// that already lost can stop before writing anything.
func rosterChanged(ownerID uuid.UUID, inviteCode string, snapshot *models.TeamRoster, replicas []models.Registration) bool {
	for _, replica := range replicas {
		if replica.ID != ownerID {
			continue
		}
		i := replica.FindByInviteCode(inviteCode)
		return i < 0 || !sameRoster(snapshot, replica.Disciplines[i].Team)
	}
	return true
}

func sameRoster(a, b *models.TeamRoster) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a.Members {
		if a.Members[i] != b.Members[i] {
			return false
		}
	}
	return true
}

func (e *TeamRosterEngine) logReport(ctx context.Context, operation string, report *PropagationReport) {
	if report == nil || report.OK() {
		return
	}
	log := logger.WithContext(ctx).WithField("operation", operation)
	for _, f := range report.Failed {
		log.WithFields(map[string]interface{}{
			"student_id":  f.StudentID,
			"invite_code": f.InviteCode,
		}).WithError(f.Err).Warnf("replica write failed")
	}
}
