package testutils

import (
	"context"
	"sort"
	"sync"
	"time"

	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"

	"github.com/google/uuid"
)

// MemoryRegistrationStore is an in-process registration store for engine tests.
// Records are cloned on every read and write so callers never alias stored state.
// Save refuses overwrites whose version is behind the stored one, like the Postgres store.
// Failures can be injected per student to exercise partial propagation.
type MemoryRegistrationStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*models.Registration
	clock   time.Time

	// FailSave, FailUpsert and FailDelete make writes for the given student return the error
	FailSave   map[uuid.UUID]error
	FailUpsert map[uuid.UUID]error
	FailDelete map[uuid.UUID]error

	SaveCalls   int
	UpsertCalls int
}

// NewMemoryRegistrationStore creates an empty store
func NewMemoryRegistrationStore() *MemoryRegistrationStore {
	return &MemoryRegistrationStore{
		records:    make(map[uuid.UUID]*models.Registration),
		clock:      time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		FailSave:   make(map[uuid.UUID]error),
		FailUpsert: make(map[uuid.UUID]error),
		FailDelete: make(map[uuid.UUID]error),
	}
}

// Seed stores registrations as-is, bypassing failure injection
func (s *MemoryRegistrationStore) Seed(registrations ...*models.Registration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range registrations {
		seeded := r.Clone()
		if seeded.Version == 0 {
			seeded.Version = 1
		}
		s.insertLocked(seeded)
	}
}

// All returns every stored registration ordered by creation
func (s *MemoryRegistrationStore) All() []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked(func(*models.Registration) bool { return true })
}

// Get returns a copy of the student's registration for the event, or nil
func (s *MemoryRegistrationStore) Get(eventID, studentID uuid.UUID) *models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.findLocked(eventID, studentID); r != nil {
		return r.Clone()
	}
	return nil
}

func (s *MemoryRegistrationStore) FindByEventAndStudent(_ context.Context, eventID, studentID uuid.UUID) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.findLocked(eventID, studentID); r != nil {
		return r.Clone(), nil
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (s *MemoryRegistrationStore) FindByID(_ context.Context, id uuid.UUID) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[id]; ok {
		return r.Clone(), nil
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (s *MemoryRegistrationStore) FindByInviteCode(ctx context.Context, inviteCode string) (*models.Registration, error) {
	replicas, _ := s.FindAllByInviteCode(ctx, inviteCode)
	if len(replicas) == 0 {
		return nil, apperrors.ErrInviteCodeNotFound
	}
	for i := range replicas {
		idx := replicas[i].FindByInviteCode(inviteCode)
		if replicas[i].Disciplines[idx].Team.IsCaptain(replicas[i].StudentID) {
			return &replicas[i], nil
		}
	}
	return &replicas[0], nil
}

func (s *MemoryRegistrationStore) FindAllByInviteCode(_ context.Context, inviteCode string) ([]models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked(func(r *models.Registration) bool {
		return r.FindByInviteCode(inviteCode) >= 0
	}), nil
}

func (s *MemoryRegistrationStore) InviteCodeExists(ctx context.Context, inviteCode string) (bool, error) {
	replicas, err := s.FindAllByInviteCode(ctx, inviteCode)
	return len(replicas) > 0, err
}

func (s *MemoryRegistrationStore) Save(_ context.Context, registration *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if err := s.FailSave[registration.StudentID]; err != nil {
		return err
	}
	for _, entry := range registration.Disciplines {
		if entry.IsTeam() {
			if err := entry.Team.ValidateShape(); err != nil {
				return apperrors.NewValidationError("team", err.Error())
			}
		}
	}

	if existing := s.findLocked(registration.EventID, registration.StudentID); existing != nil && existing.ID != registration.ID {
		return apperrors.ErrDuplicateKey
	}
	if registration.ID == uuid.Nil {
		registration.ID = uuid.New()
	}
	if registration.Status == "" {
		registration.Status = models.RegistrationStatusPending
	}
	if prev, ok := s.records[registration.ID]; ok {
		if registration.Version != prev.Version {
			return apperrors.ErrStaleRoster
		}
		registration.CreatedAt = prev.CreatedAt
	} else if registration.Version != 0 {
		// the record was deleted after it was read
		return apperrors.ErrStaleRoster
	}
	registration.Version++
	s.insertLocked(registration.Clone())
	registration.CreatedAt = s.records[registration.ID].CreatedAt
	registration.UpdatedAt = s.records[registration.ID].UpdatedAt
	return nil
}

func (s *MemoryRegistrationStore) Upsert(_ context.Context, eventID, studentID uuid.UUID, entry models.DisciplineEntry) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpsertCalls++
	if err := s.FailUpsert[studentID]; err != nil {
		return nil, err
	}
	if entry.IsTeam() {
		if err := entry.Team.ValidateShape(); err != nil {
			return nil, apperrors.NewValidationError("team", err.Error())
		}
	}

	registration := s.findLocked(eventID, studentID)
	if registration == nil {
		registration = &models.Registration{
			EventID:   eventID,
			StudentID: studentID,
			Status:    models.RegistrationStatusPending,
		}
	} else {
		registration = registration.Clone()
	}
	registration.PutDiscipline(entry.Clone())
	registration.Version++
	s.insertLocked(registration)
	return registration.Clone(), nil
}

func (s *MemoryRegistrationStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[id]; ok {
		if err := s.FailDelete[r.StudentID]; err != nil {
			return err
		}
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryRegistrationStore) insertLocked(r *models.Registration) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.clock = s.clock.Add(time.Second)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.clock
	}
	r.UpdatedAt = s.clock
	s.records[r.ID] = r
}

func (s *MemoryRegistrationStore) findLocked(eventID, studentID uuid.UUID) *models.Registration {
	for _, r := range s.records {
		if r.EventID == eventID && r.StudentID == studentID {
			return r
		}
	}
	return nil
}

func (s *MemoryRegistrationStore) sortedLocked(keep func(*models.Registration) bool) []models.Registration {
	out := make([]models.Registration, 0, len(s.records))
	for _, r := range s.records {
		if keep(r) {
			out = append(out, *r.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
