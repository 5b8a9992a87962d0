package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"competition-registration-backend/internal/config"
	"competition-registration-backend/internal/database"
	"competition-registration-backend/internal/database/models"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type DisciplineData struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Group       string `yaml:"group,omitempty"`
	MaxTeamSize int    `yaml:"max_team_size,omitempty"`
}

type EventData struct {
	Name             string           `yaml:"name"`
	RegistrationOpen *bool            `yaml:"registration_open,omitempty"`
	StartsAt         time.Time        `yaml:"starts_at"`
	Disciplines      []DisciplineData `yaml:"disciplines"`
}

type StudentData struct {
	ID       string `yaml:"id,omitempty"`
	FullName string `yaml:"full_name"`
	Grade    string `yaml:"grade,omitempty"`
}

// CatalogFile is one YAML file of seed data; either section may be empty
type CatalogFile struct {
	Events   []EventData   `yaml:"events"`
	Students []StudentData `yaml:"students"`
}

func main() {
	log.Println("Loading catalog from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	catalog, err := loadCatalogFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read catalog files: %v", err)
	}

	if err := seed(db, catalog); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Println("Catalog loaded successfully")
}

// connectWithRetry waits for Postgres to accept connections
func connectWithRetry(dsn string, maxWait time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: logger.Silent}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxWait

	attempt := 0
	return backoff.RetryWithData(func() (*gorm.DB, error) {
		attempt++
		db, err := database.Initialize(dsn, opts)
		if err != nil && attempt%5 == 0 {
			log.Printf("Database not ready (attempt %d): %v", attempt, err)
		}
		return db, err
	}, policy)
}

func loadCatalogFiles(dataDir string) (*CatalogFile, error) {
	merged := &CatalogFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file CatalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		merged.Events = append(merged.Events, file.Events...)
		merged.Students = append(merged.Students, file.Students...)
		return nil
	})

	return merged, err
}

func seed(db *gorm.DB, catalog *CatalogFile) error {
	eventCreated, disciplineCreated := 0, 0
	for _, eventData := range catalog.Events {
		event, created, err := createEvent(db, eventData)
		if err != nil {
			return fmt.Errorf("failed to create event %s: %w", eventData.Name, err)
		}
		if created {
			eventCreated++
		}

		for _, disciplineData := range eventData.Disciplines {
			created, err := createDiscipline(db, event.ID, disciplineData)
			if err != nil {
				return fmt.Errorf("failed to create discipline %s/%s: %w", eventData.Name, disciplineData.Name, err)
			}
			if created {
				disciplineCreated++
			}
		}
	}
	log.Printf("Events: %d created, %d total", eventCreated, len(catalog.Events))
	log.Printf("Disciplines: %d created", disciplineCreated)

	studentCreated := 0
	for _, studentData := range catalog.Students {
		created, err := createStudent(db, studentData)
		if err != nil {
			log.Printf("Warning: failed to create student %s: %v", studentData.FullName, err)
			continue
		}
		if created {
			studentCreated++
		}
	}
	log.Printf("Students: %d created, %d total", studentCreated, len(catalog.Students))

	return nil
}

func createEvent(db *gorm.DB, eventData EventData) (*models.Event, bool, error) {
	var event models.Event
	err := db.Where("name = ?", eventData.Name).First(&event).Error
	if err == nil {
		return &event, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query event: %w", err)
	}

	open := true
	if eventData.RegistrationOpen != nil {
		open = *eventData.RegistrationOpen
	}
	event = models.Event{
		Name:             eventData.Name,
		RegistrationOpen: open,
		StartsAt:         eventData.StartsAt,
	}
	// Select forces the false value past the column default
	if err := db.Select("*").Create(&event).Error; err != nil {
		return nil, false, err
	}
	return &event, true, nil
}

func createDiscipline(db *gorm.DB, eventID uuid.UUID, data DisciplineData) (bool, error) {
	kind := models.DisciplineKind(data.Kind)
	if kind == "" {
		kind = models.DisciplineKindIndividual
	}
	if !kind.IsValid() {
		return false, fmt.Errorf("unknown discipline kind %q", data.Kind)
	}

	var existing models.Discipline
	err := db.Where("event_id = ? AND name = ?", eventID, data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query discipline: %w", err)
	}

	discipline := models.Discipline{
		EventID:     eventID,
		Name:        data.Name,
		Kind:        kind,
		Group:       data.Group,
		MaxTeamSize: data.MaxTeamSize,
	}
	return true, db.Create(&discipline).Error
}

// createStudent keeps a fixed id from the file so seeded students can be used in tokens
func createStudent(db *gorm.DB, data StudentData) (bool, error) {
	student := models.Student{FullName: data.FullName, Grade: data.Grade}
	if data.ID != "" {
		id, err := uuid.Parse(data.ID)
		if err != nil {
			return false, fmt.Errorf("invalid student id %q: %w", data.ID, err)
		}
		var count int64
		if err := db.Model(&models.Student{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return false, nil
		}
		student.ID = id
	} else {
		var count int64
		if err := db.Model(&models.Student{}).Where("full_name = ?", data.FullName).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return false, nil
		}
	}

	return true, db.Create(&student).Error
}
