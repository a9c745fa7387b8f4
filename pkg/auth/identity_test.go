package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

func TestRequireIdentityAnonymous(t *testing.T) {
	_, err := RequireIdentity(context.Background())
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestRequireIdentityZeroID(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{})
	_, err := RequireIdentity(ctx)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestRequireIdentityRoundTrip(t *testing.T) {
	want := Identity{ID: primitive.NewObjectID(), IsInternal: true}
	ctx := WithIdentity(context.Background(), want)

	got, err := RequireIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTokenRoundTrip(t *testing.T) {
	uid := primitive.NewObjectID().Hex()
	token, err := GenerateToken(uid, true)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.True(t, claims.IsInternal)
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
