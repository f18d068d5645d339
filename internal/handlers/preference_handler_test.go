package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestPreferenceLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := f.seedUser(t, "alice", "secret")
	token, _ := f.login(t, "alice", "secret")

	// Not created automatically on signup.
	resp, err := f.app.Test(f.authed(t, token, fiber.MethodGet, "/api/preference/"+user.ID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = f.app.Test(f.authed(t, token, fiber.MethodPost, "/api/preference/",
		map[string]string{"userId": user.ID.String()}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// One preference per user.
	resp, err = f.app.Test(f.authed(t, token, fiber.MethodPost, "/api/preference/",
		map[string]string{"userId": user.ID.String()}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, err = f.app.Test(f.authed(t, token, fiber.MethodGet, "/api/preference/"+user.ID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	pref, ok := body["preference"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, []any{"balanced"}, pref["diets"])
	require.Len(t, pref["favorites"], 2)
	require.Len(t, pref["ingredients"], 4)
}

func TestUpdatePreference_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	user := f.seedUser(t, "alice", "secret")
	token, _ := f.login(t, "alice", "secret")

	pref, err := f.prefs.Create(user.ID)
	require.NoError(t, err)

	// A single favorite is rejected and the record stays unchanged.
	resp, err := f.app.Test(f.authed(t, token, fiber.MethodPatch, "/api/preference/",
		map[string]any{"id": pref.ID.String(), "favorites": []string{"pasta"}}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	stored, err := f.prefs.FindByID(pref.ID)
	require.NoError(t, err)
	require.Equal(t, []string(pref.Favorites), []string(stored.Favorites))

	// Two favorites succeed.
	resp, err = f.app.Test(f.authed(t, token, fiber.MethodPatch, "/api/preference/",
		map[string]any{"id": pref.ID.String(), "favorites": []string{"ramen", "tacos"}}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stored, err = f.prefs.FindByID(pref.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"ramen", "tacos"}, []string(stored.Favorites))
}

func TestUpdatePreference_NotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedUser(t, "alice", "secret")
	token, _ := f.login(t, "alice", "secret")

	resp, err := f.app.Test(f.authed(t, token, fiber.MethodPatch, "/api/preference/",
		map[string]any{"id": "c1a87f64-5717-4562-b3fc-2c963f66afa6", "favorites": []string{"a", "b"}}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
