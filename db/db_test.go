package db_test

import (
	"testing"

	"ats-backend/db"
	authutils "ats-backend/lib/utils/auth-utils"
	testdb "ats-backend/lib/utils/test-db"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	conn := testdb.New(t)

	applied, err := db.Migrate(conn)
	require.Nil(t, err)
	require.Equal(t, 0, applied)
	require.Nil(t, db.CheckSchema(conn))

	states, err := db.Status(conn)
	require.Nil(t, err)
	require.NotEmpty(t, states)
	for _, state := range states {
		require.True(t, state.Applied, state.Name)
		require.NotNil(t, state.AppliedAt)
	}

	require.Nil(t, conn.Where("version = ?", states[len(states)-1].Version).Delete(&dbmodels.SchemaMigration{}).Error)
	require.NotNil(t, db.CheckSchema(conn))
}

func TestPipelineTables(t *testing.T) {
	conn := testdb.New(t)
	for _, table := range []string{"requirement_stages", "candidate_progress", "interviews", "candidate_screenings"} {
		require.True(t, conn.Migrator().HasTable(table), table)
	}

	rec := dbmodels.CandidateScreening{
		CandidateID:   "cand-1",
		RequirementID: "req-1",
		AiRationale:   dbmodels.StringArray{"go", "sql, postgres"},
	}
	require.Nil(t, conn.Create(&rec).Error)
	stored := dbmodels.CandidateScreening{}
	require.Nil(t, conn.First(&stored, "id = ?", rec.ID).Error)
	require.Equal(t, rec.AiRationale, stored.AiRationale)
	require.Empty(t, stored.RedFlags)
}

func TestAddAdmin(t *testing.T) {
	t.Run("created once", func(t *testing.T) {
		conn := testdb.New(t)
		db.AddAdmin(conn, "Admin", " Admin@Example.com ", "secret1")
		db.AddAdmin(conn, "Admin", "admin@example.com", "other")

		list := []dbmodels.User{}
		require.Nil(t, conn.Find(&list).Error)
		require.Len(t, list, 1)
		require.Equal(t, "admin@example.com", list[0].Email)
		require.Equal(t, models.UserRoleAdmin, list[0].Role)
		require.True(t, authutils.CheckPassword(list[0].PasswordHash, "secret1"))
	})
	t.Run("no e-mail", func(t *testing.T) {
		conn := testdb.New(t)
		db.AddAdmin(conn, "Admin", "", "secret1")
		var count int64
		require.Nil(t, conn.Model(&dbmodels.User{}).Count(&count).Error)
		require.EqualValues(t, 0, count)
	})
}
