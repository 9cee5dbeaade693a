package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aadhi0612/Christ-Mom-Christ-Child-Game/models"
)

func adminAuth(t *testing.T, ms *memStore) string {
	t.Helper()
	adminID, _, err := ms.CreateAdmin(context.Background(), "Admin", "admin@santa-game.local")
	require.NoError(t, err)
	return bearer(t, adminID, models.RoleAdmin)
}

func TestRegisterUsersAllSucceed(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	auth := adminAuth(t, ms)

	w := doJSON(t, router, http.MethodPost, "/api/admin/register-users", auth, map[string]any{
		"users": []map[string]string{
			{"full_name": "Alice", "email": "alice@example.com"},
			{"full_name": "Bob", "email": "bob@example.com"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	require.Len(t, body["users"], 2)

	participants, err := ms.ListParticipants(context.Background())
	require.NoError(t, err)
	require.Len(t, participants, 2)
}

func TestRegisterUsersPartialFailure(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	auth := adminAuth(t, ms)

	w := doJSON(t, router, http.MethodPost, "/api/admin/register-users", auth, map[string]any{
		"users": []map[string]string{
			{"full_name": "Alice", "email": "alice@example.com"},
			{"full_name": "", "email": "bob@example.com"},
			{"full_name": "Carol", "email": "not-an-email"},
			{"full_name": "Alice Again", "email": "alice@example.com"},
		},
	})
	// Partial success is still a 400, but carries the rows that worked.
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, "Some users could not be registered", body["error"])
	require.Len(t, body["details"], 3)
	require.Len(t, body["registered_users"], 1)

	participants, err := ms.ListParticipants(context.Background())
	require.NoError(t, err)
	require.Len(t, participants, 1, "failing rows must not block the good one")
}

func TestAdminRoutesRejectParticipants(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)

	userID, err := ms.CreateParticipant(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)
	auth := bearer(t, userID, models.RoleParticipant)

	w := doJSON(t, router, http.MethodGet, "/api/admin/users", auth, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/admin/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePairingsTooFewParticipants(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	auth := adminAuth(t, ms)

	_, err := ms.CreateParticipant(context.Background(), "Alone", "alone@example.com")
	require.NoError(t, err)
	require.NoError(t, ms.InsertPairing(context.Background(), "old-a", "old-b"))

	w := doJSON(t, router, http.MethodPost, "/api/admin/create-pairings", auth, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	pairings, err := ms.ListPairings(context.Background())
	require.NoError(t, err)
	require.Len(t, pairings, 1, "rejected call must leave existing pairings untouched")
}

func TestCreatePairingsEndToEnd(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	auth := adminAuth(t, ms)

	ids := map[string]string{}
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		id, err := ms.CreateParticipant(context.Background(), name, name+"@example.com")
		require.NoError(t, err)
		ids[name] = id
	}

	w := doJSON(t, router, http.MethodPost, "/api/admin/create-pairings", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Len(t, body["pairs"], 3)

	pairings, err := ms.ListPairings(context.Background())
	require.NoError(t, err)
	require.Len(t, pairings, 3)

	// Reveal, then every participant can look up their santa: the giver
	// named in the pairing row that lists them as recipient.
	toggle := doJSON(t, router, http.MethodPost, "/api/admin/toggle-reveal", auth, nil)
	require.Equal(t, http.StatusOK, toggle.Code)
	require.Equal(t, true, decodeBody(t, toggle)["revealed"])

	santaOf := map[string]string{}
	for _, p := range pairings {
		santaOf[p.RecipientID] = p.SantaID
	}

	for name, id := range ids {
		w := doJSON(t, router, http.MethodGet, "/api/user/my-santa", bearer(t, id, models.RoleParticipant), nil)
		require.Equal(t, http.StatusOK, w.Code, "my-santa for %s", name)

		santaUser, err := ms.GetByID(context.Background(), santaOf[id])
		require.NoError(t, err)
		require.Equal(t, santaUser.FullName, decodeBody(t, w)["santa_name"])
		require.NotEqual(t, name, santaUser.FullName, "nobody is their own santa")
	}
}

func TestListPairingsResolvesNames(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	auth := adminAuth(t, ms)

	aliceID, err := ms.CreateParticipant(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)
	bobID, err := ms.CreateParticipant(context.Background(), "Bob", "bob@example.com")
	require.NoError(t, err)

	require.NoError(t, ms.InsertPairing(context.Background(), aliceID, bobID))
	require.NoError(t, ms.InsertPairing(context.Background(), bobID, aliceID))

	w := doJSON(t, router, http.MethodGet, "/api/admin/pairings", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	pairings, ok := body["pairings"].([]any)
	require.True(t, ok)
	require.Len(t, pairings, 2)
	first := pairings[0].(map[string]any)
	require.Contains(t, []string{"Alice", "Bob"}, first["santa_name"])
	require.Contains(t, []string{"Alice", "Bob"}, first["recipient_name"])
}

func TestToggleRevealTwiceRestoresValue(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	auth := adminAuth(t, ms)

	status := doJSON(t, router, http.MethodGet, "/api/pairings/revealed", "", nil)
	require.Equal(t, http.StatusOK, status.Code)
	require.Equal(t, false, decodeBody(t, status)["revealed"])

	first := doJSON(t, router, http.MethodPost, "/api/admin/toggle-reveal", auth, nil)
	require.Equal(t, true, decodeBody(t, first)["revealed"])

	second := doJSON(t, router, http.MethodPost, "/api/admin/toggle-reveal", auth, nil)
	require.Equal(t, false, decodeBody(t, second)["revealed"])
}

func TestClearDataKeepsAdmin(t *testing.T) {
	ms := newMemStore()
	router := newTestRouter(ms)
	auth := adminAuth(t, ms)

	aliceID, err := ms.CreateParticipant(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)
	bobID, err := ms.CreateParticipant(context.Background(), "Bob", "bob@example.com")
	require.NoError(t, err)
	require.NoError(t, ms.InsertPairing(context.Background(), aliceID, bobID))
	_, err = ms.CreateTask(context.Background(), taskParams("Wrap gifts"))
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/admin/clear-data", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	participants, err := ms.ListParticipants(context.Background())
	require.NoError(t, err)
	require.Empty(t, participants)

	tasks, err := ms.AllTasks(context.Background())
	require.NoError(t, err)
	require.Empty(t, tasks)

	pairings, err := ms.ListPairings(context.Background())
	require.NoError(t, err)
	require.Empty(t, pairings)

	_, err = ms.GetByEmail(context.Background(), "admin@santa-game.local")
	require.NoError(t, err, "admin account must survive clear-data")
}
