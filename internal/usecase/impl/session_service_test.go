package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestSessionService_LoginLogout(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	sf.session.Login(ctx, entity.UserProfile{Email: "mika@example.com", FirstName: "Mika"})

	session := sf.session.GetSession(ctx)
	assert.True(t, session.IsAuthenticated)
	require.NotNil(t, session.User)
	assert.Equal(t, "mika@example.com", session.User.Email)

	sf.session.Logout(ctx)

	session = sf.session.GetSession(ctx)
	assert.False(t, session.IsAuthenticated)
	assert.Nil(t, session.User)
}

func TestSessionService_UpdateUser_MergesFields(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	sf.session.Login(ctx, entity.UserProfile{Email: "mika@example.com", FirstName: "Mika", LastName: "Sato"})

	address := entity.Address{Street: "1 Rue Cler", City: "Paris", PostalCode: "75007", Country: "FR"}
	ok := sf.session.UpdateUser(ctx, entity.UserPatch{LastName: ptr("Tanaka"), Address: &address})
	require.True(t, ok)

	address.City = "Lyon"

	user := sf.session.GetSession(ctx).User
	assert.Equal(t, "mika@example.com", user.Email)
	assert.Equal(t, "Mika", user.FirstName)
	assert.Equal(t, "Tanaka", user.LastName)
	require.NotNil(t, user.Address)
	assert.Equal(t, "Paris", user.Address.City)
}

func TestSessionService_UpdateUser_AnonymousIsNoOp(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	ok := sf.session.UpdateUser(ctx, entity.UserPatch{Email: ptr("ghost@example.com")})

	assert.False(t, ok)
	session := sf.session.GetSession(ctx)
	assert.False(t, session.IsAuthenticated)
	assert.Nil(t, session.User)
}

func TestSessionService_CallerCannotMutateState(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	sf.session.Login(ctx, entity.UserProfile{Email: "mika@example.com"})

	sf.session.GetSession(ctx).User.Email = "changed@example.com"

	assert.Equal(t, "mika@example.com", sf.session.GetSession(ctx).User.Email)
}

func TestSessionService_PersistsAcrossRestart(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	sf.session.Login(ctx, entity.UserProfile{Email: "mika@example.com"})

	restarted := sf.restart(t)

	session := restarted.session.GetSession(ctx)
	assert.True(t, session.IsAuthenticated)
	require.NotNil(t, session.User)
	assert.Equal(t, "mika@example.com", session.User.Email)

	restarted.session.Logout(ctx)
	again := restarted.restart(t)
	assert.False(t, again.session.GetSession(ctx).IsAuthenticated)
}
