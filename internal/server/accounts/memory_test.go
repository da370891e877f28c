package accounts

import (
	"context"
	"sync"
	"testing"

	"github.com/MateusHBR/auth-microservice/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Low iteration count keeps hashing fast in tests; the verification path is
// identical for any positive value.
const testHashIterations = 1000

func newTestStore() *InMemoryStore {
	return NewInMemoryStore(testHashIterations)
}

func TestCreate_Succeeds(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	account, err := s.Create(context.Background(), "alice", []byte("p1"))
	require.NoError(t, err)
	require.NotNil(t, account)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.NotEmpty(t, account.PasswordHash)
	assert.NotContains(t, account.PasswordHash, "p1")

	assert.Len(t, s.byID, 1)
	assert.Len(t, s.byUsername, 1)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	_, err := s.Create(context.Background(), "alice", []byte("p1"))
	require.NoError(t, err)

	_, err = s.Create(context.Background(), "alice", []byte("p2"))
	require.ErrorIs(t, err, common.ErrorDuplicateUsername)

	assert.Len(t, s.byID, 1)
	assert.Len(t, s.byUsername, 1)
}

func TestCreate_ConcurrentSameUsername(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Create(context.Background(), "alice", []byte("pw"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, common.ErrorDuplicateUsername)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one racing Create must win")
	assert.Len(t, s.byUsername, 1)
}

func TestAuthenticate_Succeeds(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	created, err := s.Create(context.Background(), "bob", []byte("secret"))
	require.NoError(t, err)

	id, err := s.Authenticate(context.Background(), "bob", []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)
}

func TestAuthenticate_UnknownUserAndWrongPasswordCollapse(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	_, err := s.Create(context.Background(), "bob", []byte("secret"))
	require.NoError(t, err)

	_, errUnknown := s.Authenticate(context.Background(), "ghost", []byte("x"))
	_, errWrongPw := s.Authenticate(context.Background(), "bob", []byte("wrong"))

	require.ErrorIs(t, errUnknown, common.ErrorUnauthorized)
	require.ErrorIs(t, errWrongPw, common.ErrorUnauthorized)
	// The two failures must be indistinguishable to the caller.
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthenticate_CorruptStoredHash(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	_, err := s.Create(context.Background(), "bob", []byte("secret"))
	require.NoError(t, err)
	s.byUsername["bob"].PasswordHash = "not-a-phc-string"

	_, err = s.Authenticate(context.Background(), "bob", []byte("secret"))
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestDelete_RemovesBothIndices(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	created, err := s.Create(context.Background(), "carol", []byte("pw"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), created.ID))
	assert.Empty(t, s.byID)
	assert.Empty(t, s.byUsername)

	// Username is free again.
	_, err = s.Create(context.Background(), "carol", []byte("pw"))
	require.NoError(t, err)
}

func TestDelete_UnknownIDIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore()

	require.NoError(t, s.Delete(context.Background(), "no-such-id"))

	created, err := s.Create(context.Background(), "dave", []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s.Delete(context.Background(), created.ID))
	require.NoError(t, s.Delete(context.Background(), created.ID))
}
