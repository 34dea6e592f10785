// Package cli implements the backpack command-line interface: the
// interactive menu that drives both inventories, plus the init, stats and
// version subcommands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backpack/internal/paths"
	"github.com/mesh-intelligence/backpack/internal/session"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	verbose   bool
}

var flags rootFlags

// loadedConfig is set by PersistentPreRunE so all subcommands can use it.
var loadedConfig types.Config

// NewRootCmd creates the top-level "backpack" command with global flags
// and all subcommands registered. Run without a subcommand it starts the
// interactive menu.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "backpack",
		Short: "Compare an array and a linked list as a game backpack",
		Long: `Backpack keeps two inventories of game items side by side: a
fixed-capacity array and a singly linked list. Insert, remove, list and
search both, sort the array and binary-search it, and compare how many
name comparisons each search needed.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
		RunE:              runMenu,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every operation to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newStatsCmd())

	return root
}

// sysError marks a failure of the environment (file system, home
// directory) rather than of the operator's input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	os.Exit(exitCode(root.Execute()))
}

// loadSettings resolves the config directory and reads config.yaml.
func loadSettings(cmd *cobra.Command, args []string) error {
	// version needs nothing; init must work even when config.yaml is broken.
	if cmd.Name() == "version" || cmd.Name() == "init" {
		return nil
	}
	dir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return &sysError{fmt.Errorf("resolve config dir: %w", err)}
	}
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	loadedConfig = cfg
	return nil
}

// openSession opens a session for the loaded configuration, logging to
// the command's stderr.
func openSession(cmd *cobra.Command) (*session.Session, error) {
	logger := newLogger(cmd.ErrOrStderr(), loadedConfig.LogLevel, flags.verbose)
	sess, err := session.Open(loadedConfig, session.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return sess, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	return newMenu(cmd.InOrStdin(), cmd.OutOrStdout(), sess).run(cmd.Context())
}
