package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arximboldi/rrb-go/internal/config"
	"github.com/arximboldi/rrb-go/internal/logx"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
	log logx.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rrbctl",
	Short: "Inspect and manipulate rrb pool files",
	Long: `rrbctl builds, mutates, and inspects rrb vectors stored in the pool
file format: a flat table of shared leaf/inner nodes plus a list of vector
roots referencing into it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c

		level := logx.ParseLevel(cfg.Log.Level)
		if verbose {
			level = logx.LevelDebug
		}
		log = logx.New(level, os.Stderr)
		return nil
	},
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rrbctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
