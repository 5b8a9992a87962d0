package testutils

import (
	"time"

	"competition-registration-backend/internal/database/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// EventFactory provides methods to create test Event data
type EventFactory struct {
	faker *gofakeit.Faker
}

// Create creates an open test Event
func (f *EventFactory) Create() *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             f.faker.City() + " Spring Games",
		RegistrationOpen: true,
		StartsAt:         time.Now().Add(30 * 24 * time.Hour),
	}
}

// Closed creates an event that no longer accepts registrations
func (f *EventFactory) Closed() *models.Event {
	event := f.Create()
	event.RegistrationOpen = false
	return event
}

// DisciplineFactory provides methods to create test Discipline data
type DisciplineFactory struct {
	faker *gofakeit.Faker
}

// Relay creates a relay discipline for the event
func (f *DisciplineFactory) Relay(eventID uuid.UUID, maxTeamSize int) *models.Discipline {
	return f.build(eventID, "4x100 Relay "+f.faker.LetterN(4), models.DisciplineKindRelay, maxTeamSize)
}

// Group creates a group discipline for the event
func (f *DisciplineFactory) Group(eventID uuid.UUID, maxTeamSize int) *models.Discipline {
	return f.build(eventID, "Quiz Team "+f.faker.LetterN(4), models.DisciplineKindGroup, maxTeamSize)
}

// Individual creates an individual discipline for the event
func (f *DisciplineFactory) Individual(eventID uuid.UUID) *models.Discipline {
	return f.build(eventID, "Long Jump "+f.faker.LetterN(4), models.DisciplineKindIndividual, 0)
}

func (f *DisciplineFactory) build(eventID uuid.UUID, name string, kind models.DisciplineKind, maxTeamSize int) *models.Discipline {
	return &models.Discipline{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:     eventID,
		Name:        name,
		Kind:        kind,
		Group:       f.faker.RandomString([]string{"junior", "senior"}),
		MaxTeamSize: maxTeamSize,
	}
}

// StudentFactory provides methods to create test Student data
type StudentFactory struct {
	faker *gofakeit.Faker
}

// Create creates a test Student
func (f *StudentFactory) Create() *models.Student {
	return &models.Student{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: f.faker.Name(),
		Grade:    f.faker.RandomString([]string{"9", "10", "11", "12"}),
	}
}

// CreateMany creates count students
func (f *StudentFactory) CreateMany(count int) []*models.Student {
	students := make([]*models.Student, count)
	for i := range students {
		students[i] = f.Create()
	}
	return students
}

// RegistrationFactory provides methods to create test Registration data
type RegistrationFactory struct {
	faker *gofakeit.Faker
}

// Create creates an empty pending registration
func (f *RegistrationFactory) Create(eventID, studentID uuid.UUID) *models.Registration {
	return &models.Registration{
		EventID:     eventID,
		StudentID:   studentID,
		Disciplines: models.DisciplineEntries{},
		Status:      models.RegistrationStatusPending,
		Notes:       f.faker.Sentence(6),
	}
}

// WithTeam creates a registration carrying one team entry
func (f *RegistrationFactory) WithTeam(eventID, studentID uuid.UUID, entry models.DisciplineEntry) *models.Registration {
	registration := f.Create(eventID, studentID)
	registration.Disciplines = append(registration.Disciplines, entry.Clone())
	return registration
}

// TeamEntry builds a team discipline entry; the first student is captain and relays are numbered 1..N
func TeamEntry(name string, kind models.DisciplineKind, inviteCode string, studentIDs ...uuid.UUID) models.DisciplineEntry {
	code := inviteCode
	roster := &models.TeamRoster{Name: name + " team", Kind: kind}
	for i, id := range studentIDs {
		if kind == models.DisciplineKindRelay {
			roster.Members = append(roster.Members, models.NewRelayMember(id, i+1, i == 0))
		} else {
			roster.Members = append(roster.Members, models.NewGroupMember(id, i == 0))
		}
	}
	return models.DisciplineEntry{
		DisciplineID: uuid.NewString(),
		Name:         name,
		Kind:         kind,
		Team:         roster,
		InviteCode:   &code,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Event        *EventFactory
	Discipline   *DisciplineFactory
	Student      *StudentFactory
	Registration *RegistrationFactory
}

// NewFactorySet creates a new FactorySet backed by a seeded faker
func NewFactorySet(seed ...int64) *FactorySet {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	faker := gofakeit.New(uint64(s))

	return &FactorySet{
		Event:        &EventFactory{faker: faker},
		Discipline:   &DisciplineFactory{faker: faker},
		Student:      &StudentFactory{faker: faker},
		Registration: &RegistrationFactory{faker: faker},
	}
}
