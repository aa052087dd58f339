package db

import (
	dbmodels "ats-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type migration struct {
	version int
	name    string
	up      func(tx *gorm.DB) error
}

// Versions are append-only: never edit an applied step, add a new one.
// Steps migrate the current models, so a fresh database always gets the latest
// columns while an existing one only gets what a later step adds explicitly.
// A model change therefore needs its own step (AddColumn, CreateIndex) as well.
var migrations = []migration{
	{
		version: 1,
		name:    "core tables",
		up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&dbmodels.User{},
				&dbmodels.Client{},
				&dbmodels.Candidate{},
				&dbmodels.Requirement{},
				&dbmodels.RequirementAllocation{},
			)
		},
	},
	{
		version: 2,
		name:    "pipeline tables",
		up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&dbmodels.RequirementStage{},
				&dbmodels.CandidateProgress{},
				&dbmodels.Interview{},
				&dbmodels.CandidateScreening{},
			)
		},
	},
}

type MigrationState struct {
	Version   int
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

// Migrate applies every pending migration, each in its own transaction.
func Migrate(conn *gorm.DB) (applied int, err error) {
	if err = conn.AutoMigrate(&dbmodels.SchemaMigration{}); err != nil {
		return 0, errors.Wrap(err, "unable to create schema_migrations")
	}
	done, err := appliedVersions(conn)
	if err != nil {
		return 0, err
	}
	for _, m := range migrations {
		if _, ok := done[m.version]; ok {
			continue
		}
		logger := log.
			WithField("version", m.version).
			WithField("name", m.name)
		logger.Info("applying migration")
		err = conn.Transaction(func(tx *gorm.DB) error {
			if err := m.up(tx); err != nil {
				return err
			}
			rec := dbmodels.SchemaMigration{
				Version:   m.version,
				Name:      m.name,
				AppliedAt: time.Now(),
			}
			return tx.Create(&rec).Error
		})
		if err != nil {
			return applied, errors.Wrapf(err, "migration %d (%s) failed", m.version, m.name)
		}
		applied++
	}
	return applied, nil
}

func Status(conn *gorm.DB) ([]MigrationState, error) {
	if !conn.Migrator().HasTable(&dbmodels.SchemaMigration{}) {
		result := make([]MigrationState, 0, len(migrations))
		for _, m := range migrations {
			result = append(result, MigrationState{Version: m.version, Name: m.name})
		}
		return result, nil
	}
	done, err := appliedVersions(conn)
	if err != nil {
		return nil, err
	}
	result := make([]MigrationState, 0, len(migrations))
	for _, m := range migrations {
		state := MigrationState{Version: m.version, Name: m.name}
		if rec, ok := done[m.version]; ok {
			state.Applied = true
			appliedAt := rec.AppliedAt
			state.AppliedAt = &appliedAt
		}
		result = append(result, state)
	}
	return result, nil
}

// CheckSchema fails when the database is behind the code.
func CheckSchema(conn *gorm.DB) error {
	states, err := Status(conn)
	if err != nil {
		return err
	}
	pending := 0
	for _, state := range states {
		if !state.Applied {
			pending++
		}
	}
	if pending != 0 {
		return errors.Errorf("database schema is behind: %d pending migration(s), run `ats-backend migrate`", pending)
	}
	return nil
}

func appliedVersions(conn *gorm.DB) (map[int]dbmodels.SchemaMigration, error) {
	list := []dbmodels.SchemaMigration{}
	if err := conn.Order("version").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "unable to read schema_migrations")
	}
	result := make(map[int]dbmodels.SchemaMigration, len(list))
	for _, rec := range list {
		result[rec.Version] = rec
	}
	return result, nil
}
