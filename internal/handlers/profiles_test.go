package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/example/velora/internal/models"
	"github.com/example/velora/internal/store"
)

type profileListResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Status   string   `json:"status"`
		Services []string `json:"services"`
	} `json:"data"`
	Total      int `json:"total"`
	Pagination struct {
		CurrentPage int   `json:"current_page"`
		TotalItems  int64 `json:"total_items"`
		TotalPages  int   `json:"total_pages"`
		HasNext     bool  `json:"has_next"`
		HasPrev     bool  `json:"has_prev"`
	} `json:"pagination"`
}

func seedProfiles(t *testing.T, st *store.Store) {
	t.Helper()
	fixtures := []models.Profile{
		{Name: "Sophia", Age: 24, Location: "Kampala", Status: models.StatusAvailable,
			Services: datatypes.NewJSONSlice([]string{"Dinner Dates", "Events"})},
		{Name: "Isabella", Age: 22, Location: "Entebbe", Status: models.StatusExpired,
			Services: datatypes.NewJSONSlice([]string{"Social Events"})},
		{Name: "Emma", Age: 26, Location: "Jinja", Status: models.StatusAvailable,
			Services: datatypes.NewJSONSlice([]string{"Music Events"})},
	}
	for i := range fixtures {
		_, err := st.CreateProfile(&fixtures[i])
		require.NoError(t, err)
	}
}

func TestListProfilesPaginated(t *testing.T) {
	app, st := newTestApp(t)
	seedProfiles(t, st)

	resp := performRequest(t, app, http.MethodGet, "/api/profiles/?page=1&limit=2", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body profileListResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 2)
	assert.Equal(t, int64(3), body.Pagination.TotalItems)
	assert.Equal(t, 2, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNext)
	assert.False(t, body.Pagination.HasPrev)

	// Past the last page: empty data, not an error.
	resp = performRequest(t, app, http.MethodGet, "/api/profiles/?page=5&limit=2", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Empty(t, body.Data)
	assert.False(t, body.Pagination.HasNext)
}

func TestListProfilesSearchAndFilters(t *testing.T) {
	app, st := newTestApp(t)
	seedProfiles(t, st)

	resp := performRequest(t, app, http.MethodGet, "/api/profiles/?search=kamp", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body profileListResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Sophia", body.Data[0].Name)

	resp = performRequest(t, app, http.MethodGet, "/api/profiles/?status=available", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, 2, body.Total)

	resp = performRequest(t, app, http.MethodGet, "/api/profiles/?status=all", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, 3, body.Total)

	resp = performRequest(t, app, http.MethodGet, "/api/profiles/?location=jin", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Emma", body.Data[0].Name)

	resp = performRequest(t, app, http.MethodGet, "/api/profiles/?services=Music%20Events", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Emma", body.Data[0].Name)

	resp = performRequest(t, app, http.MethodGet, "/api/profiles/?status=bogus", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileCRUD(t *testing.T) {
	app, st := newTestApp(t)
	token := adminToken(t, app)

	// Writes are admin-gated.
	resp := performRequest(t, app, http.MethodPost, "/api/admin/profiles", map[string]interface{}{
		"name": "Sophia",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = performRequest(t, app, http.MethodPost, "/api/admin/profiles", map[string]interface{}{
		"name":      "Sophia",
		"age":       24,
		"location":  "Kampala",
		"services":  []string{"Dinner Dates", "Events"},
		"remark":    "Elegant and charming",
		"status":    "available",
		"days_left": 7,
		"rating":    4.8,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.Data.ID)

	// Public read.
	resp = performRequest(t, app, http.MethodGet, "/api/profiles/"+created.Data.ID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Partial update leaves other fields alone.
	resp = performRequest(t, app, http.MethodPut, "/api/admin/profiles/"+created.Data.ID, map[string]interface{}{
		"status":    "expired",
		"days_left": 0,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Data struct {
			Name     string `json:"name"`
			Status   string `json:"status"`
			Location string `json:"location"`
		} `json:"data"`
	}
	decodeBody(t, resp, &updated)
	assert.Equal(t, "expired", updated.Data.Status)
	assert.Equal(t, "Sophia", updated.Data.Name)
	assert.Equal(t, "Kampala", updated.Data.Location)

	resp = performRequest(t, app, http.MethodDelete, "/api/admin/profiles/"+created.Data.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = performRequest(t, app, http.MethodGet, "/api/profiles/"+created.Data.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	profiles, err := st.ListProfiles()
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfileValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := adminToken(t, app)

	cases := []map[string]interface{}{
		{"age": 24},                         // missing name
		{"name": "X", "age": 17},            // underage
		{"name": "X", "status": "vanished"}, // bad status
		{"name": "X", "days_left": -1},      // negative countdown
		{"name": "X", "rating": 5.5},        // rating out of range
	}

	for i, payload := range cases {
		resp := performRequest(t, app, http.MethodPost, "/api/admin/profiles", payload, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, fmt.Sprintf("case %d", i))
	}

	// Update with a bad id.
	resp := performRequest(t, app, http.MethodPut, "/api/admin/profiles/not-a-uuid", map[string]interface{}{
		"name": "X",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
