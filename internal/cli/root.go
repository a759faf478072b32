package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/statsdash/internal/config"
	"github.com/example/statsdash/internal/version"
)

// NewRootCmd builds the statsdash command tree. dir is where the config file
// (and by default the database) lives; empty means the executable's directory.
// Callers must call Shutdown after Execute.
func NewRootCmd(dir string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "statsdash",
		Short:   "Stats Dashboard - record game stats and view the latest",
		Version: version.String(),
		Long: `statsdash records six game statistics as timestamped snapshots in a local
SQLite file and shows the most recent snapshot as coloured tiles.

Run without a subcommand to show the dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				programDir, err := config.ProgramDir()
				if err != nil {
					return err
				}
				dir = programDir
			}
			return Bootstrap(dir)
		},
		RunE: runDashboard,
	}

	// Stat commands
	rootCmd.AddCommand(ShowCmd())
	rootCmd.AddCommand(CreateCmd())
	rootCmd.AddCommand(FormCmd())
	rootCmd.AddCommand(ListCmd())
	rootCmd.AddCommand(GetCmd())
	rootCmd.AddCommand(EditCmd())
	rootCmd.AddCommand(DeleteCmd())

	// Setup and diagnostics
	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(DoctorCmd())

	return rootCmd
}
