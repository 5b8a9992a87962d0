package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"
	"competition-registration-backend/internal/mocks"
	"competition-registration-backend/internal/service"
	"competition-registration-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RosterEngineTestSuite drives the engine against an in-memory registration store
type RosterEngineTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	events    *mocks.MockEventRepositoryInterface
	students  *mocks.MockStudentRepositoryInterface
	store     *testutils.MemoryRegistrationStore
	repairs   *service.RepairQueue
	engine    *service.TeamRosterEngine
	factories *testutils.FactorySet

	event      *models.Event
	relay      *models.Discipline
	group      *models.Discipline
	individual *models.Discipline
	known      map[uuid.UUID]bool

	a, b, c, d, e uuid.UUID
}

// SetupTest sets up the test suite
func (suite *RosterEngineTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.events = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.students = mocks.NewMockStudentRepositoryInterface(suite.ctrl)
	suite.store = testutils.NewMemoryRegistrationStore()
	suite.repairs = service.NewRepairQueue(nil)
	suite.factories = testutils.NewFactorySet(42)

	suite.event = suite.factories.Event.Create()
	suite.relay = suite.factories.Discipline.Relay(suite.event.ID, 4)
	suite.group = suite.factories.Discipline.Group(suite.event.ID, 0)
	suite.individual = suite.factories.Discipline.Individual(suite.event.ID)

	suite.known = map[uuid.UUID]bool{}
	students := suite.factories.Student.CreateMany(5)
	for _, s := range students {
		suite.known[s.ID] = true
	}
	suite.a, suite.b, suite.c, suite.d, suite.e = students[0].ID, students[1].ID, students[2].ID, students[3].ID, students[4].ID

	suite.events.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*models.Event, error) {
			if id == suite.event.ID {
				return suite.event, nil
			}
			return nil, apperrors.ErrEventNotFound
		}).AnyTimes()
	suite.events.EXPECT().GetDiscipline(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, eventID uuid.UUID, name string) (*models.Discipline, error) {
			for _, d := range []*models.Discipline{suite.relay, suite.group, suite.individual} {
				if d.EventID == eventID && d.Name == name {
					return d, nil
				}
			}
			return nil, apperrors.ErrDisciplineNotFound
		}).AnyTimes()
	suite.students.EXPECT().GetExistingIDs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
			var out []uuid.UUID
			for _, id := range ids {
				if suite.known[id] {
					out = append(out, id)
				}
			}
			return out, nil
		}).AnyTimes()

	catalog := service.NewCatalog(suite.events, suite.students, 4)
	suite.engine = service.NewTeamRosterEngine(suite.store, catalog, service.NewInviteCodeGenerator(3, 0), suite.repairs, nil, nil, validator.New())
}

// TearDownTest cleans up after each test
func (suite *RosterEngineTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func teamRequest(discipline *models.Discipline, members ...uuid.UUID) *service.CreateRegistrationRequest {
	team := &service.TeamRequest{Name: "Comets"}
	for _, id := range members {
		team.Members = append(team.Members, service.MemberRequest{StudentID: id})
	}
	return &service.CreateRegistrationRequest{
		Disciplines: []service.DisciplineRequest{{Name: discipline.Name, Team: team}},
	}
}

// createTeam registers captain for the discipline with the listed co-members and returns the invite code
func (suite *RosterEngineTestSuite) createTeam(discipline *models.Discipline, captain uuid.UUID, members ...uuid.UUID) string {
	registration, report, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, captain, teamRequest(discipline, members...))
	suite.Require().NoError(err)
	suite.Require().True(report.OK())
	entry := registration.Disciplines[registration.FindDiscipline(discipline.Name)]
	suite.Require().NotNil(entry.InviteCode)
	return *entry.InviteCode
}

func (suite *RosterEngineTestSuite) registrationOf(studentID uuid.UUID) *models.Registration {
	registration := suite.store.Get(suite.event.ID, studentID)
	suite.Require().NotNil(registration, "student %s has no registration", studentID)
	return registration
}

// assertConsistentTeam checks that exactly the given members hold identical copies of the team,
// with one captain and, for relays, run orders 1..N
func (suite *RosterEngineTestSuite) assertConsistentTeam(code string, members ...uuid.UUID) *models.TeamRoster {
	replicas, err := suite.store.FindAllByInviteCode(suite.ctx, code)
	suite.Require().NoError(err)
	suite.Require().Len(replicas, len(members))

	reference := replicas[0].Disciplines[replicas[0].FindByInviteCode(code)]
	holders := make([]uuid.UUID, 0, len(replicas))
	for _, replica := range replicas {
		holders = append(holders, replica.StudentID)
		entry := replica.Disciplines[replica.FindByInviteCode(code)]
		suite.Empty(cmp.Diff(reference, entry), "replica of %s diverged", replica.StudentID)
	}
	suite.ElementsMatch(members, holders)
	suite.ElementsMatch(members, reference.Team.StudentIDs())

	suite.True(service.NewCaptainPolicy().ValidateSingleCaptain(reference.Team))
	if reference.Kind == models.DisciplineKindRelay {
		for i, m := range reference.Team.Members {
			suite.Equal(i+1, m.RunOrder)
		}
	}
	return reference.Team
}

func (suite *RosterEngineTestSuite) TestCreateRelayTeam() {
	registration, report, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a, teamRequest(suite.relay, suite.b, suite.c))

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, registration.ID)
	suite.ElementsMatch([]uuid.UUID{suite.b, suite.c}, report.Updated)
	suite.Empty(report.Failed)

	code := *registration.Disciplines[0].InviteCode
	suite.Len(code, 10)
	team := suite.assertConsistentTeam(code, suite.a, suite.b, suite.c)
	suite.Equal([]uuid.UUID{suite.a, suite.b, suite.c}, team.StudentIDs())
	suite.True(team.IsCaptain(suite.a))
	suite.Equal(suite.relay.Group, registration.Disciplines[0].Group)
}

func (suite *RosterEngineTestSuite) TestCreateKeepsRequestedRunOrder() {
	req := &service.CreateRegistrationRequest{Disciplines: []service.DisciplineRequest{{
		Name: suite.relay.Name,
		Team: &service.TeamRequest{Name: "Comets", Members: []service.MemberRequest{
			{StudentID: suite.b, RunOrder: 3},
			{StudentID: suite.a, RunOrder: 2},
			{StudentID: suite.c, RunOrder: 1},
		}},
	}}}

	registration, _, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a, req)

	suite.Require().NoError(err)
	team := suite.assertConsistentTeam(*registration.Disciplines[0].InviteCode, suite.a, suite.b, suite.c)
	suite.Equal([]uuid.UUID{suite.c, suite.a, suite.b}, team.StudentIDs())
	suite.True(team.IsCaptain(suite.a))
}

func (suite *RosterEngineTestSuite) TestCreateMixedDisciplines() {
	req := teamRequest(suite.group, suite.b)
	req.Disciplines = append(req.Disciplines, service.DisciplineRequest{Name: suite.individual.Name})
	req.Notes = "bring spikes"

	registration, _, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a, req)

	suite.Require().NoError(err)
	suite.Len(registration.Disciplines, 2)
	suite.Equal("bring spikes", registration.Notes)

	individual := registration.Disciplines[registration.FindDiscipline(suite.individual.Name)]
	suite.Nil(individual.Team)
	suite.Nil(individual.InviteCode)

	code := *registration.Disciplines[registration.FindDiscipline(suite.group.Name)].InviteCode
	team := suite.assertConsistentTeam(code, suite.a, suite.b)
	for _, m := range team.Members {
		suite.Zero(m.RunOrder)
	}
	suite.Len(suite.registrationOf(suite.b).Disciplines, 1)
}

func (suite *RosterEngineTestSuite) TestCreateAddsToExistingRegistration() {
	_, _, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a,
		&service.CreateRegistrationRequest{Disciplines: []service.DisciplineRequest{{Name: suite.individual.Name}}})
	suite.Require().NoError(err)
	first := suite.registrationOf(suite.a)

	_, _, err = suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a, teamRequest(suite.relay, suite.b))
	suite.Require().NoError(err)

	second := suite.registrationOf(suite.a)
	suite.Equal(first.ID, second.ID)
	suite.Len(second.Disciplines, 2)
}

func (suite *RosterEngineTestSuite) TestInviteCodesAreUniquePerTeam() {
	relayCode := suite.createTeam(suite.relay, suite.a, suite.b)
	groupCode := suite.createTeam(suite.group, suite.c, suite.d)

	suite.NotEqual(relayCode, groupCode)
}

func (suite *RosterEngineTestSuite) TestCreateErrors() {
	unknown := uuid.New()
	tests := []struct {
		name  string
		req   *service.CreateRegistrationRequest
		check func(err error)
	}{
		{
			name:  "no disciplines",
			req:   &service.CreateRegistrationRequest{},
			check: func(err error) { suite.True(apperrors.IsValidation(err)) },
		},
		{
			name: "unknown discipline",
			req:  &service.CreateRegistrationRequest{Disciplines: []service.DisciplineRequest{{Name: "Hammer Throw"}}},
			check: func(err error) {
				suite.ErrorIs(err, apperrors.ErrDisciplineNotFound)
			},
		},
		{
			name: "discipline listed twice",
			req: &service.CreateRegistrationRequest{Disciplines: []service.DisciplineRequest{
				{Name: suite.individual.Name}, {Name: suite.individual.Name},
			}},
			check: func(err error) { suite.True(apperrors.IsValidation(err)) },
		},
		{
			name: "team on individual discipline",
			req: &service.CreateRegistrationRequest{Disciplines: []service.DisciplineRequest{
				{Name: suite.individual.Name, Team: &service.TeamRequest{Name: "Solo"}},
			}},
			check: func(err error) { suite.ErrorIs(err, apperrors.ErrNotTeamDiscipline) },
		},
		{
			name: "team discipline without team",
			req:  &service.CreateRegistrationRequest{Disciplines: []service.DisciplineRequest{{Name: suite.relay.Name}}},
			check: func(err error) {
				suite.True(apperrors.IsValidation(err))
			},
		},
		{
			name:  "duplicate member",
			req:   teamRequest(suite.relay, suite.b, suite.b),
			check: func(err error) { suite.ErrorIs(err, apperrors.ErrDuplicateTeamMember) },
		},
		{
			name: "roster over capacity",
			req:  teamRequest(suite.relay, suite.b, suite.c, suite.d, suite.e),
			check: func(err error) {
				var capacity *apperrors.CapacityError
				suite.Require().ErrorAs(err, &capacity)
				suite.Equal(4, capacity.Limit)
			},
		},
		{
			name: "run order on group team",
			req: &service.CreateRegistrationRequest{Disciplines: []service.DisciplineRequest{{
				Name: suite.group.Name,
				Team: &service.TeamRequest{Name: "Quizzers", Members: []service.MemberRequest{{StudentID: suite.b, RunOrder: 2}}},
			}}},
			check: func(err error) { suite.True(apperrors.IsValidation(err)) },
		},
		{
			name:  "unknown co-member",
			req:   teamRequest(suite.relay, suite.b, unknown),
			check: func(err error) { suite.True(apperrors.IsNotFound(err)) },
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, _, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a, tt.req)

			suite.Require().Error(err)
			tt.check(err)
			suite.Empty(suite.store.All())
		})
	}
}

func (suite *RosterEngineTestSuite) TestCreateOnClosedEvent() {
	suite.event.RegistrationOpen = false

	_, _, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a, teamRequest(suite.relay, suite.b))

	suite.ErrorIs(err, apperrors.ErrRegistrationClosed)
	suite.Empty(suite.store.All())
}

func (suite *RosterEngineTestSuite) TestCreateOnUnknownEvent() {
	_, _, err := suite.engine.CreateRegistration(suite.ctx, uuid.New(), suite.a, teamRequest(suite.relay, suite.b))

	suite.ErrorIs(err, apperrors.ErrEventNotFound)
}

func (suite *RosterEngineTestSuite) TestCreateRejectsCoMemberOnAnotherTeam() {
	suite.createTeam(suite.relay, suite.c, suite.b)
	before := suite.store.All()

	_, _, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a, teamRequest(suite.relay, suite.b))

	suite.True(apperrors.IsConflict(err))
	suite.Nil(suite.store.Get(suite.event.ID, suite.a))
	suite.Empty(cmp.Diff(before, suite.store.All()))
}

func (suite *RosterEngineTestSuite) TestCreateRejectsSecondEntryForSameDiscipline() {
	suite.createTeam(suite.relay, suite.a, suite.b)

	_, _, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a, teamRequest(suite.relay, suite.c))

	suite.ErrorIs(err, apperrors.ErrAlreadyRegistered)
}

func (suite *RosterEngineTestSuite) TestJoinAppendsToEveryReplica() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c)

	registration, err := suite.engine.JoinByInviteCode(suite.ctx, suite.d, code)

	suite.Require().NoError(err)
	suite.Equal(suite.d, registration.StudentID)
	team := suite.assertConsistentTeam(code, suite.a, suite.b, suite.c, suite.d)
	suite.Equal([]uuid.UUID{suite.a, suite.b, suite.c, suite.d}, team.StudentIDs())
	suite.Equal(4, team.Members[3].RunOrder)
	suite.True(team.IsCaptain(suite.a))
	suite.Zero(suite.repairs.Len())
}

func (suite *RosterEngineTestSuite) TestJoinGroupTeam() {
	code := suite.createTeam(suite.group, suite.a, suite.b)

	_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.c, code)

	suite.Require().NoError(err)
	team := suite.assertConsistentTeam(code, suite.a, suite.b, suite.c)
	suite.Zero(team.Members[2].RunOrder)
	suite.False(team.Members[2].Captain)
}

func (suite *RosterEngineTestSuite) TestJoinFullTeam() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c, suite.d)

	_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.e, code)

	var capacity *apperrors.CapacityError
	suite.Require().ErrorAs(err, &capacity)
	suite.Equal(4, capacity.Limit)
	suite.Nil(suite.store.Get(suite.event.ID, suite.e))
	suite.assertConsistentTeam(code, suite.a, suite.b, suite.c, suite.d)
}

func (suite *RosterEngineTestSuite) TestJoinErrors() {
	code := suite.createTeam(suite.relay, suite.a, suite.b)
	suite.createTeam(suite.relay, suite.c, suite.d)

	suite.Run("unknown invite code", func() {
		_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.e, "NOSUCHCODE")
		suite.ErrorIs(err, apperrors.ErrInviteCodeNotFound)
	})
	suite.Run("already on team", func() {
		_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.b, code)
		suite.ErrorIs(err, apperrors.ErrAlreadyOnTeam)
	})
	suite.Run("registered with another team", func() {
		_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.c, code)
		suite.ErrorIs(err, apperrors.ErrAlreadyRegistered)
	})
	suite.Run("unknown student", func() {
		_, err := suite.engine.JoinByInviteCode(suite.ctx, uuid.New(), code)
		suite.True(apperrors.IsNotFound(err))
	})
	suite.Run("discipline kind changed", func() {
		suite.relay.Kind = models.DisciplineKindGroup
		defer func() { suite.relay.Kind = models.DisciplineKindRelay }()
		_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.e, code)
		suite.ErrorIs(err, apperrors.ErrTeamKindMismatch)
	})
	suite.Run("registration closed", func() {
		suite.event.RegistrationOpen = false
		defer func() { suite.event.RegistrationOpen = true }()
		_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.e, code)
		suite.ErrorIs(err, apperrors.ErrRegistrationClosed)
	})

	suite.assertConsistentTeam(code, suite.a, suite.b)
}

func (suite *RosterEngineTestSuite) TestJoinOwnerWriteFailureAborts() {
	code := suite.createTeam(suite.relay, suite.a, suite.b)
	suite.store.FailSave[suite.a] = errors.New("connection reset")

	_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.c, code)

	suite.Require().Error(err)
	suite.Nil(suite.store.Get(suite.event.ID, suite.c))
	delete(suite.store.FailSave, suite.a)
	suite.assertConsistentTeam(code, suite.a, suite.b)
}

func (suite *RosterEngineTestSuite) TestJoinerWriteFailureLeavesTeamUntouched() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c)
	suite.store.FailUpsert[suite.d] = errors.New("write timeout")

	_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.d, code)

	suite.Require().Error(err)
	suite.Nil(suite.store.Get(suite.event.ID, suite.d))
	suite.assertConsistentTeam(code, suite.a, suite.b, suite.c)
	suite.Zero(suite.repairs.Len())

	delete(suite.store.FailUpsert, suite.d)
	_, err = suite.engine.JoinByInviteCode(suite.ctx, suite.d, code)
	suite.Require().NoError(err)
	suite.assertConsistentTeam(code, suite.a, suite.b, suite.c, suite.d)
}

func (suite *RosterEngineTestSuite) TestJoinSiblingFailureIsRepaired() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c)
	suite.store.FailSave[suite.b] = errors.New("connection reset")

	_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.d, code)

	suite.Require().NoError(err)
	suite.Equal(1, suite.repairs.Len())
	stale := suite.registrationOf(suite.b)
	suite.Equal(3, stale.Disciplines[0].Team.Size())

	delete(suite.store.FailSave, suite.b)
	worker := service.NewRepairWorker(suite.repairs, suite.store, suite.engine, time.Minute, nil)
	suite.Equal(1, worker.RunOnce(suite.ctx))
	suite.Zero(suite.repairs.Len())
	suite.assertConsistentTeam(code, suite.a, suite.b, suite.c, suite.d)
}

func (suite *RosterEngineTestSuite) TestCreateCoMemberFailureIsRepaired() {
	suite.store.FailUpsert[suite.c] = errors.New("write timeout")

	registration, report, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.a, teamRequest(suite.relay, suite.b, suite.c))

	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{suite.b}, report.Updated)
	suite.Require().Len(report.Failed, 1)
	suite.Equal(suite.c, report.Failed[0].StudentID)
	suite.Equal("write timeout", report.Failed[0].Error)
	suite.Nil(suite.store.Get(suite.event.ID, suite.c))
	suite.Equal(1, suite.repairs.Len())

	delete(suite.store.FailUpsert, suite.c)
	worker := service.NewRepairWorker(suite.repairs, suite.store, suite.engine, time.Minute, nil)
	suite.Equal(1, worker.RunOnce(suite.ctx))
	suite.assertConsistentTeam(*registration.Disciplines[0].InviteCode, suite.a, suite.b, suite.c)
}

func (suite *RosterEngineTestSuite) TestCaptainLeavePromotesNextMember() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c, suite.d)

	report, err := suite.engine.LeaveRegistration(suite.ctx, suite.registrationOf(suite.a).ID, suite.a)

	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{suite.b, suite.c, suite.d}, report.Updated)
	suite.Equal([]uuid.UUID{suite.a}, report.Deleted)
	suite.Nil(suite.store.Get(suite.event.ID, suite.a))

	team := suite.assertConsistentTeam(code, suite.b, suite.c, suite.d)
	suite.Equal([]uuid.UUID{suite.b, suite.c, suite.d}, team.StudentIDs())
	suite.True(team.IsCaptain(suite.b))
}

func (suite *RosterEngineTestSuite) TestLastMemberLeaveDissolvesTeam() {
	code := suite.createTeam(suite.relay, suite.a)

	_, err := suite.engine.LeaveRegistration(suite.ctx, suite.registrationOf(suite.a).ID, suite.a)

	suite.Require().NoError(err)
	_, err = suite.engine.GetTeam(suite.ctx, code)
	suite.ErrorIs(err, apperrors.ErrInviteCodeNotFound)
}

func (suite *RosterEngineTestSuite) TestLeaveByNonOwner() {
	suite.createTeam(suite.relay, suite.a, suite.b)

	_, err := suite.engine.LeaveRegistration(suite.ctx, suite.registrationOf(suite.a).ID, suite.b)

	suite.ErrorIs(err, apperrors.ErrNotRegistrationOwner)
	suite.NotNil(suite.store.Get(suite.event.ID, suite.a))
}

func (suite *RosterEngineTestSuite) TestLeaveUnknownRegistration() {
	_, err := suite.engine.LeaveRegistration(suite.ctx, uuid.New(), suite.a)

	suite.ErrorIs(err, apperrors.ErrRegistrationNotFound)
}

func (suite *RosterEngineTestSuite) TestJoinThenLeaveRestoresRoster() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c)
	before := suite.assertConsistentTeam(code, suite.a, suite.b, suite.c)

	_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.d, code)
	suite.Require().NoError(err)
	_, err = suite.engine.LeaveRegistration(suite.ctx, suite.registrationOf(suite.d).ID, suite.d)
	suite.Require().NoError(err)

	after := suite.assertConsistentTeam(code, suite.a, suite.b, suite.c)
	suite.Empty(cmp.Diff(before, after))
	suite.Nil(suite.store.Get(suite.event.ID, suite.d))
}

func (suite *RosterEngineTestSuite) TestRemoveMemberDeletesTheirOnlyRegistration() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c, suite.d)

	report, err := suite.engine.RemoveMember(suite.ctx, suite.registrationOf(suite.a).ID, suite.a, suite.c, suite.relay.Name)

	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{suite.c}, report.Deleted)
	suite.Nil(suite.store.Get(suite.event.ID, suite.c))
	team := suite.assertConsistentTeam(code, suite.a, suite.b, suite.d)
	suite.Equal([]uuid.UUID{suite.a, suite.b, suite.d}, team.StudentIDs())
}

func (suite *RosterEngineTestSuite) TestRemoveMemberKeepsTheirOtherDisciplines() {
	_, _, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.c,
		&service.CreateRegistrationRequest{Disciplines: []service.DisciplineRequest{{Name: suite.individual.Name}}})
	suite.Require().NoError(err)
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c)

	report, err := suite.engine.RemoveMember(suite.ctx, suite.registrationOf(suite.a).ID, suite.a, suite.c, suite.relay.Name)

	suite.Require().NoError(err)
	suite.Empty(report.Deleted)
	remaining := suite.registrationOf(suite.c)
	suite.Len(remaining.Disciplines, 1)
	suite.Equal(suite.individual.Name, remaining.Disciplines[0].Name)
	suite.assertConsistentTeam(code, suite.a, suite.b)
}

func (suite *RosterEngineTestSuite) TestRemoveMemberErrors() {
	suite.createTeam(suite.relay, suite.a, suite.b, suite.c)
	captainReg := suite.registrationOf(suite.a)
	memberReg := suite.registrationOf(suite.b)

	tests := []struct {
		name           string
		registrationID uuid.UUID
		actor          uuid.UUID
		member         uuid.UUID
		discipline     string
		expected       error
	}{
		{"not owner", captainReg.ID, suite.b, suite.c, suite.relay.Name, apperrors.ErrNotRegistrationOwner},
		{"not captain", memberReg.ID, suite.b, suite.c, suite.relay.Name, apperrors.ErrCaptainOnly},
		{"unknown discipline", captainReg.ID, suite.a, suite.c, suite.group.Name, apperrors.ErrDisciplineNotFound},
		{"member not on team", captainReg.ID, suite.a, suite.e, suite.relay.Name, apperrors.ErrMemberNotFound},
		{"remove captain", captainReg.ID, suite.a, suite.a, suite.relay.Name, apperrors.ErrCannotRemoveCaptain},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.engine.RemoveMember(suite.ctx, tt.registrationID, tt.actor, tt.member, tt.discipline)
			suite.ErrorIs(err, tt.expected)
		})
	}
}

func (suite *RosterEngineTestSuite) TestSyncRenamesEveryReplica() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c)
	name, group := "Lightning", "open"

	result, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.a, service.SyncUpdates{TeamName: &name, Group: &group})

	suite.Require().NoError(err)
	suite.Equal(2, result.Updated)
	suite.Zero(result.Created)
	suite.Zero(result.Removed)
	team := suite.assertConsistentTeam(code, suite.a, suite.b, suite.c)
	suite.Equal("Lightning", team.Name)
	suite.Equal("open", suite.registrationOf(suite.c).Disciplines[0].Group)
}

func (suite *RosterEngineTestSuite) TestSyncByNonCaptain() {
	suite.createTeam(suite.relay, suite.a, suite.b)
	name := "Hijacked"

	_, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.b, service.SyncUpdates{TeamName: &name})

	suite.ErrorIs(err, apperrors.ErrCaptainOnly)
	suite.Equal("Comets", suite.registrationOf(suite.a).Disciplines[0].Team.Name)
}

func (suite *RosterEngineTestSuite) TestSyncWithoutUpdatesByMember() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c)

	result, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.b, service.SyncUpdates{})

	suite.Require().NoError(err)
	suite.Equal(1, result.Updated)
	suite.assertConsistentTeam(code, suite.a, suite.b, suite.c)
}

func (suite *RosterEngineTestSuite) TestSyncFromStaleMemberKeepsOwnerRoster() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c)
	suite.store.FailSave[suite.b] = errors.New("connection reset")
	_, err := suite.engine.JoinByInviteCode(suite.ctx, suite.d, code)
	suite.Require().NoError(err)
	delete(suite.store.FailSave, suite.b)
	suite.Require().Equal(3, suite.registrationOf(suite.b).Disciplines[0].Team.Size())

	result, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.b, service.SyncUpdates{})

	suite.Require().NoError(err)
	suite.Zero(result.Removed)
	suite.Empty(result.Failed)
	suite.NotNil(suite.store.Get(suite.event.ID, suite.d))
	team := suite.assertConsistentTeam(code, suite.a, suite.b, suite.c, suite.d)
	suite.True(team.IsCaptain(suite.a))
}

func (suite *RosterEngineTestSuite) TestSyncByMemberLeavesOrphansAlone() {
	code := suite.createTeam(suite.relay, suite.a, suite.b)
	orphan := testutils.TeamEntry(suite.relay.Name, models.DisciplineKindRelay, code, suite.a, suite.e)
	suite.store.Seed(suite.factories.Registration.WithTeam(suite.event.ID, suite.e, orphan))

	result, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.b, service.SyncUpdates{})

	suite.Require().NoError(err)
	suite.Zero(result.Removed)
	suite.NotNil(suite.store.Get(suite.event.ID, suite.e))
}

func (suite *RosterEngineTestSuite) TestSyncIsIdempotent() {
	suite.createTeam(suite.relay, suite.a, suite.b, suite.c)
	name := "Lightning"
	updates := service.SyncUpdates{TeamName: &name}

	_, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.a, updates)
	suite.Require().NoError(err)
	first := suite.store.All()

	_, err = suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.a, updates)
	suite.Require().NoError(err)

	suite.Empty(cmp.Diff(first, suite.store.All(),
		cmpopts.IgnoreFields(models.BaseModel{}, "UpdatedAt"),
		cmpopts.IgnoreFields(models.Registration{}, "Version")))
}

func (suite *RosterEngineTestSuite) TestSyncRecreatesMissingReplica() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c)
	suite.Require().NoError(suite.store.Delete(suite.ctx, suite.registrationOf(suite.b).ID))

	result, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.a, service.SyncUpdates{})

	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
	suite.Equal(1, result.Updated)
	suite.assertConsistentTeam(code, suite.a, suite.b, suite.c)
}

func (suite *RosterEngineTestSuite) TestSyncStripsOrphanedReplica() {
	code := suite.createTeam(suite.relay, suite.a, suite.b)
	orphan := testutils.TeamEntry(suite.relay.Name, models.DisciplineKindRelay, code, suite.a, suite.e)
	suite.store.Seed(suite.factories.Registration.WithTeam(suite.event.ID, suite.e, orphan))

	result, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.a, service.SyncUpdates{})

	suite.Require().NoError(err)
	suite.Equal(1, result.Removed)
	suite.Nil(suite.store.Get(suite.event.ID, suite.e))
	suite.assertConsistentTeam(code, suite.a, suite.b)
}

func (suite *RosterEngineTestSuite) TestSyncErrors() {
	suite.createTeam(suite.relay, suite.a, suite.b)
	_, _, err := suite.engine.CreateRegistration(suite.ctx, suite.event.ID, suite.c,
		&service.CreateRegistrationRequest{Disciplines: []service.DisciplineRequest{{Name: suite.individual.Name}}})
	suite.Require().NoError(err)
	empty := ""

	suite.Run("no registration", func() {
		_, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.e, service.SyncUpdates{})
		suite.ErrorIs(err, apperrors.ErrRegistrationNotFound)
	})
	suite.Run("discipline not registered", func() {
		_, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.group.Name, suite.a, service.SyncUpdates{})
		suite.ErrorIs(err, apperrors.ErrDisciplineNotFound)
	})
	suite.Run("individual discipline", func() {
		_, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.individual.Name, suite.c, service.SyncUpdates{})
		suite.ErrorIs(err, apperrors.ErrNotTeamDiscipline)
	})
	suite.Run("empty team name", func() {
		_, err := suite.engine.SyncTeam(suite.ctx, suite.event.ID, suite.relay.Name, suite.a, service.SyncUpdates{TeamName: &empty})
		suite.True(apperrors.IsValidation(err))
	})
}

func (suite *RosterEngineTestSuite) TestGetTeam() {
	code := suite.createTeam(suite.relay, suite.a, suite.b, suite.c, suite.d)

	view, err := suite.engine.GetTeam(suite.ctx, code)

	suite.Require().NoError(err)
	suite.Equal(code, view.InviteCode)
	suite.Equal(suite.relay.Name, view.Discipline)
	suite.Equal(models.DisciplineKindRelay, view.Kind)
	suite.Equal(4, view.MaxTeamSize)
	suite.Equal(models.TeamStateFull, view.State)
	suite.Equal(4, view.Replicas)
	suite.Equal(suite.a, view.Team.Members[0].StudentID)
}

func (suite *RosterEngineTestSuite) TestGetTeamFormingUsesDefaultLimit() {
	code := suite.createTeam(suite.group, suite.a, suite.b)

	view, err := suite.engine.GetTeam(suite.ctx, code)

	suite.Require().NoError(err)
	suite.Equal(4, view.MaxTeamSize)
	suite.Equal(models.TeamStateForming, view.State)
}

func TestRosterEngineTestSuite(t *testing.T) {
	suite.Run(t, new(RosterEngineTestSuite))
}
