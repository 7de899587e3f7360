package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookexchange/covers/internal/auth"
)

func TestRootCmdIssuesAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("APP_ENV", "development")

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--subject", "ops@example.com", "--ttl", "1h"})
	require.NoError(t, cmd.Execute())

	claims, err := auth.ParseToken("cli-secret", strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestRootCmdRequiresSubject(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)

	assert.Error(t, cmd.Execute())
}
