package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bookexchange/covers/internal/auth"
)

func protected(t *testing.T) http.Handler {
	t.Helper()
	return RequireRole("secret", auth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(Subject(r.Context())))
	}))
}

func TestRequireRole(t *testing.T) {
	admin, err := auth.IssueToken("secret", "ops", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)
	reader, err := auth.IssueToken("secret", "guest", "reader", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer " + reader, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected(t).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "ops", rec.Body.String())
			}
		})
	}
}

func TestLoggerRecordsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/covers/abc", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/covers/abc", fields["path"])
	assert.EqualValues(t, http.StatusServiceUnavailable, fields["status"])
}
