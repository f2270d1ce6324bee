// Package cli implements the hoard command-line interface: a cobra command
// tree over the walkthrough in internal/demo, configured through viper.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hoard/internal/paths"
	"github.com/mesh-intelligence/hoard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error returned by RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error from Execute to a process exit code. Errors without
// an explicit code, such as flag parse failures, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	logLevel  string
	hasher    string
}

// app is the state shared by one command tree.
type app struct {
	flags rootFlags
	cfg   types.Config
	log   *slog.Logger
}

// NewRootCmd creates the top-level "hoard" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hoard",
		Short: "A walkthrough of sequences, maps, and UTF-8 text",
		Long: "hoard demonstrates a small collections library: a growable sequence,\n" +
			"an associative map with upsert, and a UTF-8 validated text buffer.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.hasher, "hasher", "", "map hashing policy: seeded, xxhash")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newSectionCmd(a, types.SectionSequence, "Run the sequence walkthrough"))
	root.AddCommand(newSectionCmd(a, types.SectionMap, "Run the map walkthrough"))
	root.AddCommand(newSectionCmd(a, types.SectionText, "Run the text walkthrough"))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hoard:", err)
		os.Exit(exitCode(err))
	}
}

// load resolves the config directory, reads config.yaml, applies flag
// overrides, and builds the logger. Commands that need no config skip it.
func (a *app) load(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "init", "help":
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(dir)
	if err != nil {
		return userError(fmt.Errorf("load config: %w", err))
	}
	if a.flags.jsonMode {
		cfg.Output = types.OutputJSON
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if a.flags.hasher != "" {
		cfg.Hasher = a.flags.hasher
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("invalid config: %w", err))
	}

	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a.log.Debug("config loaded", "dir", dir, "hasher", cfg.Hasher, "output", cfg.Output)
	return nil
}
