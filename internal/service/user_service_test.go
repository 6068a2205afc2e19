package service

import (
	"testing"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/model"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserTestService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db), repository.NewLanguageRepository(db))
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{DisplayName: "Ada", Email: "ada@example.com", Password: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestSetRoleRejectsMisspelledRole(t *testing.T) {
	svc, db := newUserTestService(t)
	user := seedUser(t, db, model.ContentCreator)

	// "adminstrator" must error out, not quietly demote to learner.
	err := svc.SetRole(user.ID, "adminstrator")
	appErr, ok := util.AsAppError(err)
	require.True(t, ok, "got %v, want an *AppError", err)
	require.Equal(t, util.CodeInvalidArgument, appErr.Code)

	var reloaded model.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.Equal(t, model.ContentCreator, reloaded.Role)
}

func TestSetRoleCanonicalSpellings(t *testing.T) {
	svc, db := newUserTestService(t)
	user := seedUser(t, db, model.Learner)

	for _, role := range []model.UserRole{model.Administrator, model.ContentCreator, model.Learner} {
		require.NoError(t, svc.SetRole(user.ID, string(role)))

		var reloaded model.User
		require.NoError(t, db.First(&reloaded, user.ID).Error)
		require.Equal(t, role, reloaded.Role)
	}
}
