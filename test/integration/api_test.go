package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url, token string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func customerPayload() map[string]any {
	return map[string]any{
		"Age":               20,
		"Gender":            "Male",
		"Tenure":            30.5,
		"Usage Frequency":   15.5,
		"Support Calls":     5,
		"Payment Delay":     15,
		"Subscription Type": "Premium",
		"Contract Length":   "Monthly",
		"Total Spend":       550,
		"Last Interaction":  15.5,
	}
}

func TestRegisterAndPredictFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// Register auto-issues a token, no login step required.
	resp := postJSON(t, app.Server.URL+"/register", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokens))
	require.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Positive(t, tokens.ExpiresIn)

	// The stored credential is a hash, never the plaintext password.
	var storedHash string
	require.NoError(t, app.DB.QueryRow("SELECT password_hash FROM users WHERE username = $1", "alice").Scan(&storedHash))
	assert.NotEqual(t, "secret123", storedHash)

	resp = postJSON(t, app.Server.URL+"/predict", tokens.AccessToken, customerPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Prediction string `json:"prediction"`
		RiskLevel  string `json:"risk_level"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Contains(t, []string{"Churn", "No Churn"}, result.Prediction)
	if result.Prediction == "Churn" {
		assert.Equal(t, "Critical", result.RiskLevel)
	} else {
		assert.Equal(t, "Safe", result.RiskLevel)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp := postJSON(t, app.Server.URL+"/register", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app.Server.URL+"/register", "", map[string]string{
		"username": "alice",
		"password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginAndPredictUnauthorized(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp := postJSON(t, app.Server.URL+"/register", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app.Server.URL+"/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app.Server.URL+"/predict", "", customerPayload())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
