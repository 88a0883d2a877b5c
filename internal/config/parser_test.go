package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sderrors "github.com/alexisbeaulieu97/statedeck/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statedeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	validYAML := `log:
  level: debug
  format: console
session:
  placeholder_name: "Jane Roe"
items:
  initial_count: 50
  batch_size: 25
  seed: 99
metrics:
  addr: ":9090"
`

	partialYAML := `items:
  page_size: 20
`

	invalidYAML := `log:
  level: [debug]
`

	unknownKey := `log:
  level: info
  colour: true
`

	badValue := `items:
  batch_size: 0
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, "console", cfg.Log.Format)
				require.Equal(t, "Jane Roe", cfg.Session.PlaceholderName)
				require.Equal(t, 50, cfg.Items.InitialCount)
				require.Equal(t, 25, cfg.Items.BatchSize)
				require.Equal(t, uint64(99), cfg.Items.Seed)
				require.Equal(t, ":9090", cfg.Metrics.Addr)
			},
		},
		{
			name:     "missing sections keep defaults",
			contents: partialYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 20, cfg.Items.PageSize)
				require.Equal(t, 1000, cfg.Items.InitialCount)
				require.Equal(t, Default().Session, cfg.Session)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "malformed yaml reports line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *sderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
				require.Nil(t, cfg)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: unknownKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *sderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "invalid values fail validation",
			contents: badValue,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *sderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "items.batch_size", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := parse(writeConfig(t, tc.contents), nil, nil)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	t.Parallel()

	_, err := parse(filepath.Join(t.TempDir(), "missing.yaml"), nil, nil)
	var parseErr *sderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Zero(t, extractLine(nil))
	require.Equal(t, 14, extractLine(errString("yaml: line 14: did not find expected key")))
	require.Zero(t, extractLine(errString("no line here")))
}

type errString string

func (e errString) Error() string { return string(e) }
