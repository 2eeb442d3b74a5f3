package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flights/internal/paths"
	"github.com/mesh-intelligence/flights/internal/sqlite"
)

// initResult is the JSON form of a completed init.
type initResult struct {
	ConfigFile    string       `json:"config_file"`
	ConfigCreated bool         `json:"config_created"`
	DataDir       string       `json:"data_dir"`
	Seeded        bool         `json:"seeded"`
	Stats         sqlite.Stats `json:"stats"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and the flight network",
		Long: "Create the configuration and data directories, write a default config.yaml,\n" +
			"seed the sample network when no dataset exists, and load it once to verify.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	if err := os.MkdirAll(a.cfg.ConfigDir, 0o755); err != nil {
		return sysError("create config directory: %w", err)
	}

	// Only an explicit --data-dir is pinned in config.yaml.
	configPath := paths.ConfigFile(a.cfg.ConfigDir)
	created, err := writeConfigIfMissing(configPath, a.flags.dataDir)
	if err != nil {
		return sysError("write config: %w", err)
	}

	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		return sysError("create data directory: %w", err)
	}
	seeded, err := sqlite.SeedDataset(a.cfg.DataDir)
	if err != nil {
		return sysError("%w", err)
	}

	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := s.backend.Stats(cmd.Context())
	if err != nil {
		return sysError("reading dataset: %w", err)
	}

	a.logger.Info("flights initialized", "config_created", created, "seeded", seeded)
	res := initResult{
		ConfigFile:    configPath,
		ConfigCreated: created,
		DataDir:       a.cfg.DataDir,
		Seeded:        seeded,
		Stats:         stats,
	}
	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), res)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config: %s\n", res.ConfigFile)
	fmt.Fprintf(out, "Data:   %s\n", res.DataDir)
	if seeded {
		fmt.Fprintln(out, "Seeded the sample network.")
	}
	fmt.Fprintf(out, "Loaded %d airports, %d airlines, %d routes\n", stats.Airports, stats.Airlines, stats.Routes)
	return nil
}
