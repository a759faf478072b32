package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/statsdash/internal/config"
	"github.com/example/statsdash/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the config file and initialize the database",
		Long: `Write statsdash.yaml beside the program (if missing) and create the stats
database with the required schema.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg := ActiveConfig()

			if _, err := os.Stat(cfg.Path()); errors.Is(err, os.ErrNotExist) {
				if err := config.SaveConfig(cfg.Dir(), cfg); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Config written to %s\n", cfg.Path())
			} else {
				fmt.Fprintf(out, "✓ Config already present at %s\n", cfg.Path())
			}

			fmt.Fprintf(out, "Initializing database at %s\n", cfg.DBPath())
			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Fprintln(out, "✓ Database initialized successfully")

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  statsdash form")
			fmt.Fprintln(out, "  statsdash show")

			return nil
		},
	}
}
