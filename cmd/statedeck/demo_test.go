package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/statedeck/internal/state"
)

func TestDemoCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "demo", "--format", "json")
	require.NoError(t, err)

	var steps []demoStep
	require.NoError(t, json.Unmarshal([]byte(stdout), &steps))
	require.Len(t, steps, 4)

	initial := steps[0].State
	assert.Equal(t, state.ModeLight, initial.Mode)
	assert.Nil(t, initial.User)
	assert.Empty(t, initial.Notifications)

	login := steps[1].State
	require.NotNil(t, login.User)
	assert.Equal(t, state.User{ID: 1, Name: state.DefaultPlaceholderName, Email: demoEmail}, *login.User)
	require.Len(t, login.Notifications, 1)
	assert.Equal(t, state.NotificationSuccess, login.Notifications[0].Type)

	toggled := steps[2].State
	assert.Equal(t, state.ModeDark, toggled.Mode)
	assert.Equal(t, login.User, toggled.User)
	assert.Equal(t, login.Notifications, toggled.Notifications)

	dismissed := steps[3].State
	assert.Empty(t, dismissed.Notifications)
	assert.NotNil(t, dismissed.User)
}

func TestDemoCommandYAML(t *testing.T) {
	stdout, _, err := execute(t, "demo")
	require.NoError(t, err)

	var steps []demoStep
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &steps))
	require.Len(t, steps, 4)
	assert.Equal(t, "toggle theme", steps[2].Step)
	assert.Equal(t, state.ModeDark, steps[2].State.Mode)
}

func TestDemoCommandRejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "demo", "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported format")
}

func TestDemoCommandUsesConfiguredSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statedeck.yaml")
	content := []byte("session:\n  placeholder_name: Ada\n  login_message: Welcome back\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	stdout, _, err := execute(t, "--config", path, "demo", "--format", "json")
	require.NoError(t, err)

	var steps []demoStep
	require.NoError(t, json.Unmarshal([]byte(stdout), &steps))
	require.NotNil(t, steps[1].State.User)
	assert.Equal(t, "Ada", steps[1].State.User.Name)
	assert.Equal(t, "Welcome back", steps[1].State.Notifications[0].Message)
}

func TestDemoCommandReportsConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statedeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	_, _, err := execute(t, "--config", path, "demo")
	require.Error(t, err)
	require.Contains(t, err.Error(), "load configuration")
}

func TestDemoCommandVerboseLogsEvents(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "demo")
	require.NoError(t, err)

	assert.Contains(t, stderr, "state event")
	assert.Contains(t, stderr, "session.login")
	assert.Contains(t, stderr, `"session_id"`)
}

func TestRootFallsBackToDemoWithoutTerminal(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, stdout, "step: login")
	assert.Contains(t, stdout, "email: "+demoEmail)
}

func TestDemoCommandDiff(t *testing.T) {
	stdout, _, err := execute(t, "demo", "--diff")
	require.NoError(t, err)

	assert.Contains(t, stdout, "# initial\nmode: light\n")
	assert.Contains(t, stdout, "--- login\n+++ toggle theme\n")
	assert.Contains(t, stdout, "-mode: light\n+mode: dark\n")
	assert.Contains(t, stdout, "+    email: "+demoEmail+"\n")
}
