// Package cli implements the flights command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// exitCode maps a command error to a process exit code. Errors that did not
// come from a command (flag parsing, unknown commands) are user errors.
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
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by one invocation of the command tree.
type app struct {
	flags  rootFlags
	v      *viper.Viper
	cfg    settings
	logger *slog.Logger
	stderr io.Writer
}

// NewRootCmd creates the top-level "flights" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{v: newViper(), stderr: os.Stderr}

	root := &cobra.Command{
		Use:   "flights",
		Short: "Search flight itineraries between cities",
		Long: "flights searches a local airport and route network for direct routes\n" +
			"and multi-hop itineraries between two cities.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.stderr = cmd.ErrOrStderr()
			return a.load()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (env FLIGHTS_CONFIG_DIR)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (env FLIGHTS_DATA_DIR)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	a.bindFlag(keyLogLevel, root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAirportsCmd(a))
	root.AddCommand(newRoutesCmd(a))
	root.AddCommand(newSearchCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(exitCode(err))
	}
}
