package usecase

import (
	"context"
	"testing"
	"time"

	"career-compass/internal/pkg/jwt"
	ucauth "career-compass/internal/usecase/auth"
	ucuser "career-compass/internal/usecase/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *jwt.HMACService {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	users := newFakeUsers()
	uc := NewAuthUsecase(users, newTestJWT())
	ctx := context.Background()
	age := 29

	usr, access, refresh, err := uc.Register(ctx, ucauth.RegisterInput{
		Name:            "Ana",
		Email:           " Ana@Example.com ",
		Password:        "correct horse",
		Age:             &age,
		EducationLevel:  "Master",
		YearsExperience: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", usr.Email)
	assert.Empty(t, usr.PasswordHash)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	_, _, _, err = uc.Register(ctx, ucauth.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "another pass"})
	assert.ErrorIs(t, err, ucauth.ErrEmailAlreadyRegistered)

	_, _, _, err = uc.Login(ctx, ucauth.LoginInput{Email: "ana@example.com", Password: "wrong password"})
	assert.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	logged, _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "ANA@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, usr.ID, logged.ID)

	newAccess, newRefresh, err := uc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)

	_, _, err = uc.Refresh(ctx, access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc := NewAuthUsecase(newFakeUsers(), newTestJWT())
	zero := 0

	for _, in := range []ucauth.RegisterInput{
		{Name: "", Email: "a@b.c", Password: "long enough"},
		{Name: "A", Email: "", Password: "long enough"},
		{Name: "A", Email: "a@b.c", Password: "short"},
		{Name: "A", Email: "a@b.c", Password: "long enough", YearsExperience: -1},
		{Name: "A", Email: "a@b.c", Password: "long enough", Age: &zero},
	} {
		_, _, _, err := uc.Register(context.Background(), in)
		assert.ErrorIs(t, err, ucauth.ErrInvalidInput)
	}
}

func TestUser_UpdateProfile(t *testing.T) {
	users := newFakeUsers()
	auth := NewAuthUsecase(users, newTestJWT())
	usr, _, _, err := auth.Register(context.Background(), ucauth.RegisterInput{Name: "Ana", Email: "a@b.c", Password: "long enough"})
	require.NoError(t, err)

	uc := NewUserUsecase(users)
	edu := "PhD"
	years := 7
	updated, err := uc.UpdateProfile(context.Background(), usr.ID, ucuser.UpdateProfileInput{EducationLevel: &edu, YearsExperience: &years})
	require.NoError(t, err)
	assert.Equal(t, "PhD", updated.EducationLevel)
	assert.Equal(t, 7, updated.YearsExperience)
	assert.Equal(t, "Ana", updated.Name)

	negative := -2
	_, err = uc.UpdateProfile(context.Background(), usr.ID, ucuser.UpdateProfileInput{YearsExperience: &negative})
	assert.ErrorIs(t, err, ucuser.ErrInvalidInput)

	_, err = uc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ucuser.ErrNotFound)
}
