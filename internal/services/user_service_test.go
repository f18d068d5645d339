package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture(t *testing.T) (*UserService, *fakeUserStore, *fakePreferenceStore) {
	t.Helper()
	users := newFakeUserStore()
	prefs := newFakePreferenceStore()
	tokens := newTokenService("access-key", "refresh-key", 15*time.Minute, 7*24*time.Hour)
	return NewUserService(users, prefs, tokens), users, prefs
}

func TestCreateUser_HashesPassword(t *testing.T) {
	t.Parallel()

	svc, users, _ := newUserFixture(t)

	created, err := svc.CreateUser("alice", "secret")
	require.NoError(t, err)

	stored, err := users.FindByID(created.ID)
	require.NoError(t, err)
	require.NotEqual(t, "secret", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestCreateUser_DuplicateDiffersOnlyInCase(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture(t)

	_, err := svc.CreateUser("Alice", "secret")
	require.NoError(t, err)

	_, err = svc.CreateUser("alice", "other")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUser_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture(t)

	_, err := svc.CreateUser("", "secret")
	require.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.CreateUser("alice", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateUser_RenameIssuesNewRefreshToken(t *testing.T) {
	t.Parallel()

	svc, users, _ := newUserFixture(t)
	created, err := svc.CreateUser("alice", "secret")
	require.NoError(t, err)

	updated, refresh, err := svc.UpdateUser(created.ID.String(), "alicia", "")
	require.NoError(t, err)
	require.Equal(t, "alicia", updated.Username)
	require.NotEmpty(t, refresh)

	tokens := newTokenService("access-key", "refresh-key", 15*time.Minute, 7*24*time.Hour)
	claims, err := tokens.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, "alicia", claims.Username)

	// Password untouched when omitted.
	stored, err := users.FindByID(created.ID)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestUpdateUser_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture(t)
	_, err := svc.CreateUser("alice", "secret")
	require.NoError(t, err)
	bob, err := svc.CreateUser("bob", "secret")
	require.NoError(t, err)

	_, _, err = svc.UpdateUser(bob.ID.String(), "ALICE", "")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUpdateUser_SameUserKeepsUsername(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture(t)
	created, err := svc.CreateUser("alice", "secret")
	require.NoError(t, err)

	// Re-saving your own username is not a duplicate.
	_, _, err = svc.UpdateUser(created.ID.String(), "Alice", "")
	require.NoError(t, err)
}

func TestDeleteUser_CascadesToPreference(t *testing.T) {
	t.Parallel()

	svc, users, prefs := newUserFixture(t)
	created, err := svc.CreateUser("alice", "secret")
	require.NoError(t, err)
	_, err = prefs.Create(created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(created.ID.String()))

	_, err = users.FindByID(created.ID)
	require.Error(t, err)
	_, err = prefs.FindByUser(created.ID)
	require.Error(t, err)
}

func TestDeleteUser_NoPreference(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture(t)
	created, err := svc.CreateUser("alice", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(created.ID.String()))
}

func TestDeleteUser_Missing(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture(t)

	require.ErrorIs(t, svc.DeleteUser(""), ErrMissingFields)
	require.ErrorIs(t, svc.DeleteUser("not-a-uuid"), ErrUserNotFound)
	require.ErrorIs(t, svc.DeleteUser("c1a87f64-5717-4562-b3fc-2c963f66afa6"), ErrUserNotFound)
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newUserFixture(t)
	created, err := svc.CreateUser("alice", "secret")
	require.NoError(t, err)

	got, err := svc.GetUser(created.ID.String())
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = svc.GetUser("not-a-uuid")
	require.ErrorIs(t, err, ErrUserNotFound)
}
