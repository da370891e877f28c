package auth

import (
	"context"
	"testing"

	"github.com/MateusHBR/auth-microservice/internal/common"
	"github.com/MateusHBR/auth-microservice/internal/server/accounts"
	"github.com/MateusHBR/auth-microservice/internal/server/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashIterations = 1000

func newTestService() *Service {
	return NewService(accounts.NewInMemoryStore(testHashIterations), sessions.NewInMemoryStore())
}

func TestSignUp_SecondAttemptWithSameUsernameFails(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, "alice", []byte("p1")))

	err := svc.SignUp(ctx, "alice", []byte("p2"))
	require.ErrorIs(t, err, common.ErrorDuplicateUsername)
}

func TestSignUp_WipesPassword(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	password := []byte("sensitive")
	require.NoError(t, svc.SignUp(context.Background(), "alice", password))

	for i, b := range password {
		if b != 0 {
			t.Fatalf("password byte %d not wiped", i)
		}
	}
}

func TestSignIn_Succeeds(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, "bob", []byte("secret")))

	session, err := svc.SignIn(ctx, "bob", []byte("secret"))
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccountID)
	assert.NotEmpty(t, session.Token)
}

func TestSignIn_TokenDiffersOnEachSignIn(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, "bob", []byte("secret")))

	first, err := svc.SignIn(ctx, "bob", []byte("secret"))
	require.NoError(t, err)
	second, err := svc.SignIn(ctx, "bob", []byte("secret"))
	require.NoError(t, err)

	assert.Equal(t, first.AccountID, second.AccountID)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestSignIn_WrongPassword(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, "bob", []byte("secret")))

	session, err := svc.SignIn(ctx, "bob", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Nil(t, session)
}

func TestSignIn_UnknownUserOnEmptyStore(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	session, err := svc.SignIn(context.Background(), "ghost", []byte("x"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Nil(t, session)
}

func TestSignOut_IsIdempotent(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, "carol", []byte("pw")))
	session, err := svc.SignIn(ctx, "carol", []byte("pw"))
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, session.Token))
	require.NoError(t, svc.SignOut(ctx, session.Token))
	require.NoError(t, svc.SignOut(ctx, "never-issued"))
}

func TestDeleteAccount_CascadesSessionRevocation(t *testing.T) {
	t.Parallel()

	accountStore := accounts.NewInMemoryStore(testHashIterations)
	sessionStore := sessions.NewInMemoryStore()
	svc := NewService(accountStore, sessionStore)
	ctx := context.Background()

	require.NoError(t, svc.SignUp(ctx, "dave", []byte("pw")))
	session, err := svc.SignIn(ctx, "dave", []byte("pw"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, session.AccountID))

	// No orphaned session survives the deletion.
	_, err = sessionStore.Owner(ctx, session.Token)
	require.ErrorIs(t, err, common.ErrorNotFound)

	// The account is gone too.
	_, err = svc.SignIn(ctx, "dave", []byte("pw"))
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestDeleteAccount_UnknownIDIsIdempotent(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	require.NoError(t, svc.DeleteAccount(context.Background(), "no-such-id"))
}
