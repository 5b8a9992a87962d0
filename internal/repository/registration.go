package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// FindByEventAndStudent retrieves the single registration a student holds for an event
func (r *RegistrationRepository) FindByEventAndStudent(ctx context.Context, eventID, studentID uuid.UUID) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.WithContext(ctx).First(&registration, "event_id = ? AND student_id = ?", eventID, studentID).Error
	if err != nil {
		return nil, translateLookupError("find registration", err)
	}
	return &registration, nil
}

// FindByID retrieves a registration by ID
func (r *RegistrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.WithContext(ctx).First(&registration, "id = ?", id).Error
	if err != nil {
		return nil, translateLookupError("find registration", err)
	}
	return &registration, nil
}

// FindByInviteCode returns the owner replica of a team: the registration whose own copy marks
// its student as captain, or the oldest replica when no copy does.
func (r *RegistrationRepository) FindByInviteCode(ctx context.Context, inviteCode string) (*models.Registration, error) {
	replicas, err := r.FindAllByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	if len(replicas) == 0 {
		return nil, apperrors.ErrInviteCodeNotFound
	}
	for i := range replicas {
		idx := replicas[i].FindByInviteCode(inviteCode)
		if idx >= 0 && replicas[i].Disciplines[idx].Team.IsCaptain(replicas[i].StudentID) {
			return &replicas[i], nil
		}
	}
	return &replicas[0], nil
}

// FindAllByInviteCode lists every registration carrying the invite code, oldest first
func (r *RegistrationRepository) FindAllByInviteCode(ctx context.Context, inviteCode string) ([]models.Registration, error) {
	filter, err := inviteCodeFilter(inviteCode)
	if err != nil {
		return nil, err
	}

	var registrations []models.Registration
	err = r.db.WithContext(ctx).
		Where("disciplines @> ?::jsonb", filter).
		Order("created_at ASC, id ASC").
		Find(&registrations).Error
	if err != nil {
		return nil, apperrors.NewPersistenceError("find registrations by invite code", err)
	}
	return registrations, nil
}

// InviteCodeExists reports whether any discipline entry already uses the code
func (r *RegistrationRepository) InviteCodeExists(ctx context.Context, inviteCode string) (bool, error) {
	filter, err := inviteCodeFilter(inviteCode)
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.WithContext(ctx).Model(&models.Registration{}).
		Where("disciplines @> ?::jsonb", filter).
		Count(&count).Error
	if err != nil {
		return false, apperrors.NewPersistenceError("check invite code", err)
	}
	return count > 0, nil
}

// Save creates a registration, or overwrites one only if its version still matches what
// the caller read. A lost race returns ErrStaleRoster and leaves the stored row untouched.
func (r *RegistrationRepository) Save(ctx context.Context, registration *models.Registration) error {
	if err := validateRegistration(registration); err != nil {
		return err
	}
	if registration.Status == "" {
		registration.Status = models.RegistrationStatusPending
	}

	if registration.Version == 0 {
		registration.Version = 1
		if err := r.db.WithContext(ctx).Create(registration).Error; err != nil {
			registration.Version = 0
			if isUniqueViolation(err) {
				return apperrors.ErrDuplicateKey
			}
			return apperrors.NewPersistenceError("create registration", err)
		}
		return nil
	}

	expected := registration.Version
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Registration{}).
		Where("id = ? AND version = ?", registration.ID, expected).
		Updates(map[string]interface{}{
			"disciplines": registration.Disciplines,
			"status":      registration.Status,
			"notes":       registration.Notes,
			"version":     expected + 1,
			"updated_at":  now,
		})
	if result.Error != nil {
		return apperrors.NewPersistenceError("save registration", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrStaleRoster
	}
	registration.Version = expected + 1
	registration.UpdatedAt = now
	return nil
}

// Upsert creates the student's registration for the event if absent, otherwise appends the
// entry or replaces the one with the same discipline id. Calling it twice with the same
// entry leaves its disciplines unchanged.
func (r *RegistrationRepository) Upsert(ctx context.Context, eventID, studentID uuid.UUID, entry models.DisciplineEntry) (*models.Registration, error) {
	if entry.IsTeam() {
		if err := entry.Team.ValidateShape(); err != nil {
			return nil, apperrors.NewValidationError("team", err.Error())
		}
	}

	var (
		result *models.Registration
		err    error
	)
	// A concurrent create of the same (event, student) row surfaces as a unique violation;
	// the second attempt then finds the row and updates it.
	for attempt := 0; attempt < 2; attempt++ {
		result, err = r.upsertOnce(ctx, eventID, studentID, entry)
		if !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError("upsert registration", err)
	}
	return result, nil
}

func (r *RegistrationRepository) upsertOnce(ctx context.Context, eventID, studentID uuid.UUID, entry models.DisciplineEntry) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&registration, "event_id = ? AND student_id = ?", eventID, studentID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			registration = models.Registration{
				EventID:     eventID,
				StudentID:   studentID,
				Disciplines: models.DisciplineEntries{entry.Clone()},
				Status:      models.RegistrationStatusPending,
				Version:     1,
			}
			return tx.Create(&registration).Error
		case err != nil:
			return err
		}

		registration.PutDiscipline(entry.Clone())
		registration.Version++
		return tx.Save(&registration).Error
	})
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// Delete removes a registration; deleting a missing record is not an error
func (r *RegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&models.Registration{}, "id = ?", id).Error
	return apperrors.NewPersistenceError("delete registration", err)
}

func validateRegistration(registration *models.Registration) error {
	if registration == nil {
		return apperrors.NewValidationError("registration", "registration is required")
	}
	if registration.EventID == uuid.Nil || registration.StudentID == uuid.Nil {
		return apperrors.NewValidationError("registration", "event_id and student_id are required")
	}
	if registration.Status != "" && !registration.Status.IsValid() {
		return apperrors.NewValidationError("status", "unknown registration status")
	}
	for _, entry := range registration.Disciplines {
		if entry.IsTeam() {
			if err := entry.Team.ValidateShape(); err != nil {
				return apperrors.NewValidationError("team", err.Error())
			}
		}
	}
	return nil
}

func inviteCodeFilter(inviteCode string) (string, error) {
	b, err := json.Marshal([]map[string]string{{"invite_code": inviteCode}})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func translateLookupError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrRegistrationNotFound
	}
	return apperrors.NewPersistenceError(op, err)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
