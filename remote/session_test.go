package remote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sukh8282/exconsole/config"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestSession(t *testing.T) {
	t.Run("test connect and probe", func(t *testing.T) {
		gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/ping", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		})
		session := NewSession(config.RemoteConfig{Endpoint: gateway.URL})
		require.NoError(t, session.Connect())
		require.True(t, session.IsConnected())
	})

	t.Run("test connect gives up after retries", func(t *testing.T) {
		calls := 0
		gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		session := NewSession(config.RemoteConfig{Endpoint: gateway.URL, ConnectRetries: 1, ProbeTTLSeconds: 1})
		require.Error(t, session.Connect())
		require.Equal(t, 2, calls)
	})

	t.Run("test probe result is cached", func(t *testing.T) {
		calls := 0
		gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusOK)
		})
		session := NewSession(config.RemoteConfig{Endpoint: gateway.URL, ProbeTTLSeconds: 60})
		require.True(t, session.IsConnected())
		require.True(t, session.IsConnected())
		require.Equal(t, 1, calls)
	})

	t.Run("test call delivers result", func(t *testing.T) {
		gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/invoke", r.URL.Path)
			require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			var req callRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "Get-MailboxPermission", req.Op)
			require.Equal(t, "a@x.com", req.Params["Identity"])
			json.NewEncoder(w).Encode(callResponse{Result: []any{map[string]any{"User": "b@x.com"}}})
		})
		session := NewSession(config.RemoteConfig{Endpoint: gateway.URL, Token: "secret"})
		result, err := session.Call("Get-MailboxPermission", map[string]any{"Identity": "a@x.com"})
		require.NoError(t, err)
		list, ok := result.([]any)
		require.True(t, ok)
		require.Len(t, list, 1)
	})

	t.Run("test call surfaces gateway error", func(t *testing.T) {
		gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(callResponse{Error: "mailbox not found"})
		})
		session := NewSession(config.RemoteConfig{Endpoint: gateway.URL})
		_, err := session.Call("Get-Mailbox", nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "mailbox not found")
	})
}
