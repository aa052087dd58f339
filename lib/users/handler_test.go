package users

import (
	"testing"

	"ats-backend/lib/notify"
	"ats-backend/lib/requirement"
	"ats-backend/lib/smtp"
	apperrors "ats-backend/lib/utils/app-errors"
	testdb "ats-backend/lib/utils/test-db"
	"ats-backend/models"
	requirementapimodels "ats-backend/models/api/requirement"
	usersapimodels "ats-backend/models/api/users"
	dbmodels "ats-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func getInstance(t *testing.T) (Provider, requirement.Provider, *gorm.DB) {
	conn := testdb.New(t)
	requirementProvider := requirement.NewInstance(conn, &notify.Recorder{}, &smtp.Recorder{})
	return NewInstance(conn, requirementProvider), requirementProvider, conn
}

func TestCreate(t *testing.T) {
	t.Run("pre-created without password", func(t *testing.T) {
		provider, _, _ := getInstance(t)
		id, err := provider.Create(usersapimodels.UserData{Name: "Meera", Email: "Meera@Example.com"})
		require.Nil(t, err)
		item, err := provider.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, "meera@example.com", item.Email)
		require.Equal(t, models.UserRoleRecruiter, item.Role)
		require.Equal(t, models.UserStatusActive, item.Status)
		require.False(t, item.SignedUp)
	})
	t.Run("with password", func(t *testing.T) {
		provider, _, _ := getInstance(t)
		id, err := provider.Create(usersapimodels.UserData{Name: "Ravi", Email: "ravi@example.com", Role: models.UserRoleTeamLead, Password: "secret1"})
		require.Nil(t, err)
		item, err := provider.GetByID(id)
		require.Nil(t, err)
		require.True(t, item.SignedUp)
	})
	t.Run("duplicate e-mail", func(t *testing.T) {
		provider, _, _ := getInstance(t)
		_, err := provider.Create(usersapimodels.UserData{Name: "Meera", Email: "meera@example.com"})
		require.Nil(t, err)
		_, err = provider.Create(usersapimodels.UserData{Name: "Other", Email: "MEERA@example.com"})
		require.True(t, apperrors.IsConflict(err))
	})
	t.Run("client user needs a client", func(t *testing.T) {
		provider, _, conn := getInstance(t)
		_, err := provider.Create(usersapimodels.UserData{Name: "Acme HR", Email: "hr@acme.com", Role: models.UserRoleClient})
		require.True(t, apperrors.IsValidation(err))
		_, err = provider.Create(usersapimodels.UserData{Name: "Acme HR", Email: "hr@acme.com", Role: models.UserRoleClient, ClientID: "missing"})
		require.True(t, apperrors.IsValidation(err))

		client := dbmodels.Client{Name: "Acme", Status: models.ClientStatusActive}
		require.Nil(t, conn.Create(&client).Error)
		id, err := provider.Create(usersapimodels.UserData{Name: "Acme HR", Email: "hr@acme.com", Role: models.UserRoleClient, ClientID: client.ID})
		require.Nil(t, err)
		item, err := provider.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, client.ID, item.ClientID)
	})
	t.Run("invalid role", func(t *testing.T) {
		provider, _, _ := getInstance(t)
		_, err := provider.Create(usersapimodels.UserData{Name: "X", Email: "x@example.com", Role: "OWNER"})
		require.True(t, apperrors.IsValidation(err))
	})
}

func TestUpdate(t *testing.T) {
	provider, _, _ := getInstance(t)
	first, err := provider.Create(usersapimodels.UserData{Name: "Meera", Email: "meera@example.com"})
	require.Nil(t, err)
	_, err = provider.Create(usersapimodels.UserData{Name: "Ravi", Email: "ravi@example.com"})
	require.Nil(t, err)

	t.Run("update fields", func(t *testing.T) {
		err := provider.Update(first, usersapimodels.UserData{Name: "Meera S", Email: "meera@example.com", Phone: "999", Role: models.UserRoleTeamLead})
		require.Nil(t, err)
		item, err := provider.GetByID(first)
		require.Nil(t, err)
		require.Equal(t, "Meera S", item.Name)
		require.Equal(t, models.UserRoleTeamLead, item.Role)
	})
	t.Run("e-mail taken", func(t *testing.T) {
		err := provider.Update(first, usersapimodels.UserData{Name: "Meera", Email: "ravi@example.com"})
		require.True(t, apperrors.IsConflict(err))
	})
	t.Run("status", func(t *testing.T) {
		require.Nil(t, provider.UpdateStatus(first, usersapimodels.StatusUpdate{Status: "inactive"}))
		item, err := provider.GetByID(first)
		require.Nil(t, err)
		require.Equal(t, models.UserStatusInactive, item.Status)
		require.True(t, apperrors.IsValidation(provider.UpdateStatus(first, usersapimodels.StatusUpdate{Status: "PAUSED"})))
		require.True(t, apperrors.IsNotFound(provider.UpdateStatus("missing", usersapimodels.StatusUpdate{Status: "ACTIVE"})))
	})
}

func TestRecruitersAndDetails(t *testing.T) {
	provider, requirementProvider, conn := getInstance(t)
	admin, err := provider.Create(usersapimodels.UserData{Name: "Admin", Email: "admin@example.com", Role: models.UserRoleAdmin})
	require.Nil(t, err)
	recruiter, err := provider.Create(usersapimodels.UserData{Name: "Meera", Email: "meera@example.com"})
	require.Nil(t, err)
	inactive, err := provider.Create(usersapimodels.UserData{Name: "Ravi", Email: "ravi@example.com"})
	require.Nil(t, err)
	require.Nil(t, provider.UpdateStatus(inactive, usersapimodels.StatusUpdate{Status: models.UserStatusInactive}))

	list, err := provider.Recruiters()
	require.Nil(t, err)
	require.Len(t, list, 1)
	require.Equal(t, recruiter, list[0].ID)

	client := dbmodels.Client{Name: "Acme", Status: models.ClientStatusActive}
	require.Nil(t, conn.Create(&client).Error)
	reqRec := dbmodels.Requirement{ClientID: client.ID, Title: "Go Developer", Location: "Pune", Status: models.RequirementStatusOpen}
	require.Nil(t, conn.Create(&reqRec).Error)
	_, err = requirementProvider.Allocate(reqRec.ID, requirementapimodels.AllocationCreate{RecruiterID: recruiter, AssignedBy: admin})
	require.Nil(t, err)
	require.Nil(t, conn.Create(&dbmodels.Candidate{Name: "Asha", Email: "asha@example.com", CreatedBy: &recruiter}).Error)

	details, err := provider.Details(recruiter)
	require.Nil(t, err)
	require.Equal(t, "Meera", details.User.Name)
	require.Len(t, details.Assignments, 1)
	require.Len(t, details.Candidates, 1)

	all, err := provider.List()
	require.Nil(t, err)
	require.Len(t, all, 3)
	require.Len(t, provider.Roles(), 6)

	require.Nil(t, provider.Delete(inactive))
	require.True(t, apperrors.IsNotFound(provider.Delete(inactive)))
}
