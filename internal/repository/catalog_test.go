//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"
	"competition-registration-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CatalogRepositoryTestSuite tests the EventRepository and StudentRepository
type CatalogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	events        *EventRepository
	students      *StudentRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *CatalogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.events = NewEventRepository(suite.baseTestSuite.DB)
	suite.students = NewStudentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *CatalogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CatalogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CatalogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestEventAndDisciplines tests creating an event with disciplines and reading them back
func (suite *CatalogRepositoryTestSuite) TestEventAndDisciplines() {
	event := suite.factories.Event.Create()
	suite.Require().NoError(suite.events.Create(suite.ctx, event))

	relay := suite.factories.Discipline.Relay(event.ID, 4)
	suite.Require().NoError(suite.events.CreateDiscipline(suite.ctx, relay))

	found, err := suite.events.GetByID(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal(event.Name, found.Name)
	suite.True(found.RegistrationOpen)

	byName, err := suite.events.GetByName(suite.ctx, event.Name)
	suite.Require().NoError(err)
	suite.Equal(event.ID, byName.ID)

	discipline, err := suite.events.GetDiscipline(suite.ctx, event.ID, relay.Name)
	suite.Require().NoError(err)
	suite.Equal(models.DisciplineKindRelay, discipline.Kind)
	suite.Equal(4, discipline.MaxTeamSize)
}

// TestDuplicateDiscipline tests the (event, name) unique constraint
func (suite *CatalogRepositoryTestSuite) TestDuplicateDiscipline() {
	event := suite.factories.Event.Create()
	suite.Require().NoError(suite.events.Create(suite.ctx, event))
	relay := suite.factories.Discipline.Relay(event.ID, 4)
	suite.Require().NoError(suite.events.CreateDiscipline(suite.ctx, relay))

	duplicate := suite.factories.Discipline.Relay(event.ID, 6)
	duplicate.Name = relay.Name
	err := suite.events.CreateDiscipline(suite.ctx, duplicate)

	suite.True(apperrors.IsConflict(err))
}

// TestNotFound tests lookups of missing catalog entries
func (suite *CatalogRepositoryTestSuite) TestNotFound() {
	_, err := suite.events.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrEventNotFound)

	_, err = suite.events.GetDiscipline(suite.ctx, uuid.New(), "Relay")
	suite.ErrorIs(err, apperrors.ErrDisciplineNotFound)

	_, err = suite.students.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, apperrors.ErrStudentNotFound)
}

// TestGetExistingIDs tests filtering ids against the student directory
func (suite *CatalogRepositoryTestSuite) TestGetExistingIDs() {
	students := suite.factories.Student.CreateMany(2)
	for _, s := range students {
		suite.Require().NoError(suite.students.Create(suite.ctx, s))
	}

	existing, err := suite.students.GetExistingIDs(suite.ctx, []uuid.UUID{students[0].ID, uuid.New(), students[1].ID})

	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{students[0].ID, students[1].ID}, existing)

	none, err := suite.students.GetExistingIDs(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(none)
}

// TestCatalogRepositoryTestSuite runs the test suite
func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
