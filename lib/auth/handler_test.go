package auth

import (
	"testing"

	"ats-backend/config"
	usersstore "ats-backend/lib/users/store"
	apperrors "ats-backend/lib/utils/app-errors"
	testdb "ats-backend/lib/utils/test-db"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"
	dbmodels "ats-backend/models/db"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func getInstance(t *testing.T) (Provider, *gorm.DB) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "secret"
	config.Conf.Auth.JWTExpireInSec = 60
	conn := testdb.New(t)
	return NewInstance(conn), conn
}

func addUser(t *testing.T, conn *gorm.DB, email, password string, status models.UserStatus) string {
	rec := dbmodels.User{Name: "Meera", Email: email, Role: models.UserRoleRecruiter, Status: status}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.Nil(t, err)
		rec.PasswordHash = string(hash)
	}
	id, err := usersstore.NewInstance(conn).Create(rec)
	require.Nil(t, err)
	return id
}

func TestLogin(t *testing.T) {
	provider, conn := getInstance(t)
	id := addUser(t, conn, "meera@example.com", "secret1", models.UserStatusActive)
	addUser(t, conn, "off@example.com", "secret1", models.UserStatusInactive)
	addUser(t, conn, "new@example.com", "", models.UserStatusActive)

	t.Run("success", func(t *testing.T) {
		resp, err := provider.Login(authapimodels.LoginRequest{Email: "Meera@Example.com", Password: "secret1"})
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, id, resp.UserID)
		require.Equal(t, models.UserRoleRecruiter, resp.Role)

		me, err := provider.Me(authapimodels.UserInfo{ID: id})
		require.Nil(t, err)
		require.NotNil(t, me.LastLogin)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.Login(authapimodels.LoginRequest{Email: "meera@example.com", Password: "nope"})
		require.True(t, apperrors.IsUnauthorized(err))
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := provider.Login(authapimodels.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
		require.True(t, apperrors.IsUnauthorized(err))
	})
	t.Run("inactive user", func(t *testing.T) {
		_, err := provider.Login(authapimodels.LoginRequest{Email: "off@example.com", Password: "secret1"})
		require.True(t, apperrors.IsUnauthorized(err))
	})
	t.Run("not signed up", func(t *testing.T) {
		_, err := provider.Login(authapimodels.LoginRequest{Email: "new@example.com", Password: "secret1"})
		require.True(t, apperrors.IsUnauthorized(err))
	})
	t.Run("validation", func(t *testing.T) {
		_, err := provider.Login(authapimodels.LoginRequest{Email: "bad", Password: "x"})
		require.True(t, apperrors.IsValidation(err))
	})
}

func TestSignup(t *testing.T) {
	provider, conn := getInstance(t)
	addUser(t, conn, "new@example.com", "", models.UserStatusActive)
	addUser(t, conn, "meera@example.com", "secret1", models.UserStatusActive)

	t.Run("pre-created user sets password", func(t *testing.T) {
		resp, err := provider.Signup(authapimodels.SignupRequest{Email: "new@example.com", Password: "secret2", Name: "Neha"})
		require.Nil(t, err)
		require.Equal(t, "Neha", resp.Name)

		_, err = provider.Login(authapimodels.LoginRequest{Email: "new@example.com", Password: "secret2"})
		require.Nil(t, err)
	})
	t.Run("already signed up", func(t *testing.T) {
		_, err := provider.Signup(authapimodels.SignupRequest{Email: "meera@example.com", Password: "secret2"})
		require.True(t, apperrors.IsConflict(err))
	})
	t.Run("unknown e-mail", func(t *testing.T) {
		_, err := provider.Signup(authapimodels.SignupRequest{Email: "ghost@example.com", Password: "secret2"})
		require.True(t, apperrors.IsForbidden(err))
	})
	t.Run("short password", func(t *testing.T) {
		_, err := provider.Signup(authapimodels.SignupRequest{Email: "new@example.com", Password: "123"})
		require.True(t, apperrors.IsValidation(err))
	})
}
