package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/ferndale/nutritrack-backend/internal/pkg/errors"
	"github.com/ferndale/nutritrack-backend/internal/repos"
	"github.com/ferndale/nutritrack-backend/internal/repos/testutil"
	"github.com/ferndale/nutritrack-backend/internal/requestdata"
	"github.com/ferndale/nutritrack-backend/internal/types"
	"github.com/ferndale/nutritrack-backend/internal/utils"
)

func seedCredentialedUser(t *testing.T, db *gorm.DB, email, password string) *types.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &types.User{
		Name:         "login user",
		Email:        email,
		Level:        types.LevelUser,
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func newAuthService(t *testing.T, db *gorm.DB) AuthService {
	t.Helper()
	log := testutil.Logger(t)
	return NewAuthService(db, log, repos.NewUserRepo(db, log), "test-secret", time.Hour)
}

func TestAuthServiceLoginRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	user := seedCredentialedUser(t, db, "roundtrip@example.com", "s3cret-pw")

	token, err := svc.Login(ctx, "roundtrip@example.com", "s3cret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, types.LevelUser, claims.Level)

	authedCtx, err := svc.SetContextFromToken(ctx, token)
	require.NoError(t, err)
	rd := requestdata.GetRequestData(authedCtx)
	require.NotNil(t, rd)
	assert.Equal(t, user.ID, rd.UserID)
}

func TestAuthServiceLoginCaseInsensitiveEmail(t *testing.T) {
	db := testutil.DB(t)
	svc := newAuthService(t, db)

	seedCredentialedUser(t, db, "CaseFold@Example.com", "pw-123456")

	token, err := svc.Login(context.Background(), "casefold@example.com", "pw-123456")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthServiceLoginRejections(t *testing.T) {
	db := testutil.DB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	seedCredentialedUser(t, db, "reject@example.com", "right-password")

	_, err := svc.Login(ctx, "reject@example.com", "wrong-password")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Login(ctx, "unknown@example.com", "whatever")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Login(ctx, "", "")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthServiceParseTokenRejectsForgedSignature(t *testing.T) {
	db := testutil.DB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	seedCredentialedUser(t, db, "forged@example.com", "pw-forged")
	token, err := svc.Login(ctx, "forged@example.com", "pw-forged")
	require.NoError(t, err)

	other := NewAuthService(db, testutil.Logger(t), repos.NewUserRepo(db, testutil.Logger(t)), "different-secret", time.Hour)
	_, err = other.ParseToken(token)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.ParseToken("not.a.token")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthServiceParseTokenRejectsExpired(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewAuthService(db, log, repos.NewUserRepo(db, log), "test-secret", -time.Minute)
	ctx := context.Background()

	seedCredentialedUser(t, db, "expired@example.com", "pw-expired")
	token, err := svc.Login(ctx, "expired@example.com", "pw-expired")
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
