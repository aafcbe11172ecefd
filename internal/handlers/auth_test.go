package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "Alice", "+256701111111", "secret123")

	// Duplicate phone number.
	resp := performRequest(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Impostor",
		"phone":    "+256701111111",
		"password": "other",
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Missing required fields.
	resp = performRequest(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"phone": "+256702222222",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Mismatched confirmation.
	resp = performRequest(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"name":             "Bob",
		"phone":            "+256702222222",
		"password":         "secret123",
		"password_confirm": "secret124",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "Alice", "+256701111111", "secret123")

	resp := performRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"phone":    "+256701111111",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		User    struct {
			Name string `json:"name"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Alice", body.User.Name)
	assert.NotEmpty(t, body.Token)

	// Wrong password.
	resp = performRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"phone":    "+256701111111",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Unknown phone.
	resp = performRequest(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"phone":    "+256709999999",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyFlow(t *testing.T) {
	app, st := newTestApp(t)

	registerUser(t, app, "Alice", "+256701111111", "secret123")

	// The code is only ever "sent" to the log; fish it out of the store.
	verification, found, err := st.LatestVerification("+256701111111")
	require.NoError(t, err)
	require.True(t, found)

	// Wrong code first.
	wrongCode := "000000"
	if verification.Code == wrongCode {
		wrongCode = "000001"
	}
	resp := performRequest(t, app, http.MethodPost, "/api/auth/verify", map[string]string{
		"phone": "+256701111111",
		"code":  wrongCode,
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = performRequest(t, app, http.MethodPost, "/api/auth/verify", map[string]string{
		"phone": "+256701111111",
		"code":  verification.Code,
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	user, found, err := st.GetUserByPhone("+256701111111")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, user.IsVerified)

	// Unknown phone has no code.
	resp = performRequest(t, app, http.MethodPost, "/api/auth/verify", map[string]string{
		"phone": "+256709999999",
		"code":  "123456",
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResend(t *testing.T) {
	app, st := newTestApp(t)

	registerUser(t, app, "Alice", "+256701111111", "secret123")

	first, _, err := st.LatestVerification("+256701111111")
	require.NoError(t, err)

	resp := performRequest(t, app, http.MethodPost, "/api/auth/resend", map[string]string{
		"phone": "+256701111111",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	latest, _, err := st.LatestVerification("+256701111111")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, latest.ID)

	// No account, no resend.
	resp = performRequest(t, app, http.MethodPost, "/api/auth/resend", map[string]string{
		"phone": "+256709999999",
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSocialLogin(t *testing.T) {
	app, st := newTestApp(t)

	resp := performRequest(t, app, http.MethodPost, "/api/auth/social", map[string]string{
		"provider": "google",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Provider string `json:"provider"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "google", body.User.Provider)

	users, err := st.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsVerified)

	resp = performRequest(t, app, http.MethodPost, "/api/auth/social", map[string]string{
		"provider": "myspace",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
