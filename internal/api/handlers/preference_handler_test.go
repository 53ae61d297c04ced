package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"fridgemate/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceHandler_DarkMode(t *testing.T) {
	s := newTestServer(t, nil)

	resp, env := s.do(t, http.MethodGet, "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var prefs domain.Preferences
	require.NoError(t, json.Unmarshal(env.Data, &prefs))
	assert.False(t, prefs.DarkMode)

	resp, env = s.do(t, http.MethodPut, "/api/v1/preferences/dark-mode", `{"darkMode": true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &prefs))
	assert.True(t, prefs.DarkMode)

	resp, env = s.do(t, http.MethodGet, "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &prefs))
	assert.True(t, prefs.DarkMode)
}

func TestPreferenceHandler_DarkModeRequiresValue(t *testing.T) {
	s := newTestServer(t, nil)

	resp, _ := s.do(t, http.MethodPut, "/api/v1/preferences/dark-mode", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
