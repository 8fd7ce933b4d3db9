package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgraph/internal/domain"
	"socialgraph/internal/repository/memory"
	"socialgraph/internal/service"
)

func newTestRouter() *http.ServeMux {
	userRepo := memory.NewUserRepo()
	profileRepo := memory.NewProfileRepo()
	postRepo := memory.NewPostRepo()
	memberTypeRepo := memory.NewMemberTypeRepo(domain.DefaultMemberTypes())
	notifier := service.NopNotifier{}

	userService := service.NewUserService(userRepo, profileRepo, postRepo, notifier)
	profileService := service.NewProfileService(profileRepo, userRepo, memberTypeRepo, notifier)
	postService := service.NewPostService(postRepo, userRepo, notifier)
	memberTypeService := service.NewMemberTypeService(memberTypeRepo)

	return NewRouter(
		NewUserHandler(userService),
		NewProfileHandler(profileService),
		NewPostHandler(postService),
		NewMemberTypeHandler(memberTypeService),
	)
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func createUserReq(t *testing.T, mux *http.ServeMux, firstName string) domain.User {
	t.Helper()

	w := doRequest(t, mux, http.MethodPost, "/api/v1/users", map[string]string{
		"firstName": firstName,
		"lastName":  "Tester",
		"email":     firstName + "@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var u domain.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&u))
	return u
}

func TestHealth(t *testing.T) {
	mux := newTestRouter()
	w := doRequest(t, mux, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserEndpoints_StatusCodes(t *testing.T) {
	mux := newTestRouter()

	u := createUserReq(t, mux, "alice")

	// GET
	w := doRequest(t, mux, http.MethodGet, "/api/v1/users/"+u.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, mux, http.MethodGet, "/api/v1/users/b0000000-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, mux, http.MethodGet, "/api/v1/users/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Validation failure on create
	w = doRequest(t, mux, http.MethodPost, "/api/v1/users", map[string]string{"firstName": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// PATCH on an absent user is a bad request, not 404
	w = doRequest(t, mux, http.MethodPatch, "/api/v1/users/b0000000-0000-4000-8000-000000000000",
		map[string]string{"firstName": "ghost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser_StatusCodes(t *testing.T) {
	mux := newTestRouter()

	u := createUserReq(t, mux, "alice")

	// Well formed but not v4 → 400 before any lookup
	w := doRequest(t, mux, http.MethodDelete, "/api/v1/users/6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Well formed v4 but absent → 404
	w = doRequest(t, mux, http.MethodDelete, "/api/v1/users/b0000000-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting returns the deleted user
	w = doRequest(t, mux, http.MethodDelete, "/api/v1/users/"+u.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var deleted domain.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&deleted))
	assert.Equal(t, u.ID, deleted.ID)
}

func TestProfileEndpoints_IntegrityGates(t *testing.T) {
	mux := newTestRouter()

	u := createUserReq(t, mux, "alice")

	profileBody := func(memberType string) map[string]any {
		return map[string]any{
			"userId":       u.ID.String(),
			"memberTypeId": memberType,
			"avatar":       "avatar.png",
			"sex":          "female",
			"birthday":     318384000,
			"country":      "NL",
			"street":       "Mekelweg 4",
			"city":         "Delft",
		}
	}

	// Unknown member type
	w := doRequest(t, mux, http.MethodPost, "/api/v1/profiles", profileBody("platinum"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// First profile succeeds
	w = doRequest(t, mux, http.MethodPost, "/api/v1/profiles", profileBody("basic"))
	require.Equal(t, http.StatusCreated, w.Code)
	var p domain.Profile
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))

	// Second profile for the same user fails
	w = doRequest(t, mux, http.MethodPost, "/api/v1/profiles", profileBody("business"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown owner
	body := profileBody("basic")
	body["userId"] = "b0000000-0000-4000-8000-000000000000"
	w = doRequest(t, mux, http.MethodPost, "/api/v1/profiles", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Delete on an absent profile → 400 (not 404)
	w = doRequest(t, mux, http.MethodDelete, "/api/v1/profiles/b0000000-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// GET on an absent profile → 404
	w = doRequest(t, mux, http.MethodGet, "/api/v1/profiles/b0000000-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, mux, http.MethodDelete, "/api/v1/profiles/"+p.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubscriptionEndpoints(t *testing.T) {
	mux := newTestRouter()

	u1 := createUserReq(t, mux, "u1")
	u2 := createUserReq(t, mux, "u2")

	subscribe := func(targetID, followerID string) *httptest.ResponseRecorder {
		return doRequest(t, mux, http.MethodPost,
			fmt.Sprintf("/api/v1/users/%s/subscribe", targetID),
			map[string]string{"userId": followerID})
	}

	// u2 follows u1; the response is the target, unchanged.
	w := subscribe(u1.ID.String(), u2.ID.String())
	require.Equal(t, http.StatusOK, w.Code)
	var target domain.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&target))
	assert.Equal(t, u1.ID, target.ID)
	assert.Empty(t, target.SubscribedToUserIDs)

	// Absent target → 404; absent follower → 400; self-subscribe → 400.
	w = subscribe("b0000000-0000-4000-8000-000000000000", u2.ID.String())
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = subscribe(u1.ID.String(), "b0000000-0000-4000-8000-000000000000")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = subscribe(u1.ID.String(), u1.ID.String())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unsubscribing a missing edge → 400.
	w = doRequest(t, mux, http.MethodPost,
		fmt.Sprintf("/api/v1/users/%s/unsubscribe", u2.ID.String()),
		map[string]string{"userId": u1.ID.String()})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Deleting u1 scrubs u2's subscription list.
	w = doRequest(t, mux, http.MethodDelete, "/api/v1/users/"+u1.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, mux, http.MethodGet, "/api/v1/users/"+u2.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var u2After domain.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&u2After))
	assert.Empty(t, u2After.SubscribedToUserIDs)
}

func TestMemberTypeEndpoints(t *testing.T) {
	mux := newTestRouter()

	w := doRequest(t, mux, http.MethodGet, "/api/v1/member-types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var memberTypes []domain.MemberType
	require.NoError(t, json.NewDecoder(w.Body).Decode(&memberTypes))
	assert.Len(t, memberTypes, 2)

	w = doRequest(t, mux, http.MethodGet, "/api/v1/member-types/basic", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, mux, http.MethodGet, "/api/v1/member-types/platinum", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, mux, http.MethodPatch, "/api/v1/member-types/basic", map[string]int{"discount": 3})
	require.Equal(t, http.StatusOK, w.Code)
	var mt domain.MemberType
	require.NoError(t, json.NewDecoder(w.Body).Decode(&mt))
	assert.Equal(t, 3, mt.Discount)
	assert.Equal(t, 20, mt.MonthPostsLimit)

	// PATCH on an absent member type → 400.
	w = doRequest(t, mux, http.MethodPatch, "/api/v1/member-types/platinum", map[string]int{"discount": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
