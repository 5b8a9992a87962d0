package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"competition-registration-backend/internal/config"
	"competition-registration-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "roster"
	pgPassword = "roster"
	pgDatabase = "registrations_test"
)

// Tables wiped between tests, children first
var cleanTables = []string{"registrations", "disciplines", "students", "events"}

// One Postgres container is shared by every suite in the test binary
var (
	containerOnce sync.Once
	containerErr  error
	pool          *dockertest.Pool
	resource      *dockertest.Resource
	sharedDB      *gorm.DB
	sharedConfig  *config.Config
)

// BaseTestSuite gives integration suites a migrated database
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("failed to start test database: %v", containerErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer removes the container. TestMain calls it once the run ends.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if pool != nil && resource != nil {
		if err := pool.Purge(resource); err != nil {
			log.Printf("WARN: could not purge test database container: %v", err)
		}
		resource, pool = nil, nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every roster table
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(cleanTables, ", ") + ` RESTART IDENTITY CASCADE`)
}

func startPostgres() error {
	var err error
	pool, err = dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	// Reaped by docker if the test binary dies without cleanup
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetHostPort("5432/tcp"), pgDatabase)

	err = pool.Retry(func() error {
		probe, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer probe.Close()
		if err := probe.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		sharedDB = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("test database never became ready: %w", err)
	}

	sharedConfig = &config.Config{
		DatabaseURL:          dsn,
		Port:                 "8080",
		LogLevel:             "debug",
		Environment:          "test",
		DefaultMaxTeamSize:   4,
		InviteCodeMaxRetries: 5,
	}

	log.Printf("Test database ready at %s", resource.GetHostPort("5432/tcp"))
	return nil
}
