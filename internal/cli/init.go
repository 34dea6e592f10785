package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/backpack/internal/paths"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

var initCapacity int

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with default values. An existing file is left untouched.",
		RunE:  runInit,
	}
	cmd.Flags().IntVar(&initCapacity, "capacity", types.DefaultCapacity, "array backpack capacity")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return &sysError{fmt.Errorf("resolve config dir: %w", err)}
	}

	cfg := types.Config{Capacity: initCapacity, LogLevel: types.DefaultLogLevel}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &sysError{fmt.Errorf("create config directory: %w", err)}
	}

	path := paths.ConfigFile(dir)
	written, err := writeConfigIfMissing(path, cfg)
	if err != nil {
		return &sysError{fmt.Errorf("write config: %w", err)}
	}
	if !written {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
	return nil
}

// writeConfigIfMissing creates config.yaml with cfg if the file does not
// exist. It reports whether it wrote the file.
func writeConfigIfMissing(path string, cfg types.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
