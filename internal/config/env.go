package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	sderrors "github.com/alexisbeaulieu97/statedeck/pkg/errors"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "STATEDECK_"

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// Path is the YAML file. Empty falls back to STATEDECK_CONFIG, then to
	// defaults only.
	Path string
	// EnvFile is a dotenv file loaded before overrides are applied. A
	// missing file is ignored. Variables already set in the process win.
	EnvFile string
	// Override runs after the file and environment are applied and before
	// validation, so command-line flags are validated like any other source.
	Override func(*Config)
}

// Load merges defaults, the YAML file, STATEDECK_* environment variables and
// opts.Override, in that order, and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, sderrors.NewParseError(opts.EnvFile, 0, err)
		}
	}

	path := opts.Path
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}

	return parse(path, os.LookupEnv, opts.Override)
}

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	strs := map[string]*string{
		"LOG_LEVEL":        &cfg.Log.Level,
		"LOG_FORMAT":       &cfg.Log.Format,
		"LOG_FILE":         &cfg.Log.File,
		"PLACEHOLDER_NAME": &cfg.Session.PlaceholderName,
		"LOGIN_MESSAGE":    &cfg.Session.LoginMessage,
		"LOGOUT_MESSAGE":   &cfg.Session.LogoutMessage,
		"METRICS_ADDR":     &cfg.Metrics.Addr,
	}
	for key, target := range strs {
		if value, ok := lookup(EnvPrefix + key); ok {
			*target = strings.TrimSpace(value)
		}
	}

	ints := map[string]*int{
		"ITEMS_INITIAL_COUNT": &cfg.Items.InitialCount,
		"ITEMS_BATCH_SIZE":    &cfg.Items.BatchSize,
		"ITEMS_PAGE_SIZE":     &cfg.Items.PageSize,
	}
	for key, target := range ints {
		value, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return sderrors.NewValidationError(EnvPrefix+key, "must be an integer", err)
		}
		*target = parsed
	}

	if value, ok := lookup(EnvPrefix + "ITEMS_SEED"); ok {
		parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return sderrors.NewValidationError(EnvPrefix+"ITEMS_SEED", "must be an unsigned integer", err)
		}
		cfg.Items.Seed = parsed
	}

	if value, ok := lookup(EnvPrefix + "UI_USE_UNICODE"); ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return sderrors.NewValidationError(EnvPrefix+"UI_USE_UNICODE", "must be a boolean", err)
		}
		cfg.UI.UseUnicode = parsed
	}

	return nil
}
