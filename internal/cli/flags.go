package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/srcctx-dev/srcctx/internal/config"
	"github.com/srcctx-dev/srcctx/internal/logutil"
)

// resolveIntFlag prefers an explicitly set flag over the config value.
func resolveIntFlag(cmd *cobra.Command, name string, fallback int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

func resolveBoolFlag(cmd *cobra.Command, name string, fallback bool) (bool, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

func resolveStringFlag(cmd *cobra.Command, name string, fallback string) (string, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

func stringSliceFlag(cmd *cobra.Command, name string) ([]string, error) {
	values, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return values, nil
}

// diagnosticLevel derives the stderr log level: -q and -v beat the config
// file, which beats the warn default.
func diagnosticLevel(cmd *cobra.Command, cfg *config.Config) (slog.Level, error) {
	verbosity, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return 0, fmt.Errorf("failed to read --verbose flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return 0, fmt.Errorf("failed to read --quiet flag: %w", err)
	}
	if quiet || verbosity > 0 {
		return logutil.LevelFromVerbosity(verbosity, quiet), nil
	}
	return logutil.LevelFromString(cfg.LogLevel), nil
}
