package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/modrecon/internal/logging"
	"github.com/danmuck/modrecon/internal/recon"
)

var (
	verbose    bool
	examples   int
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "reconctl <root_path> <modules_file>",
	Short: "Reconcile package-definition files against a module manifest",
	Long: `reconctl recursively discovers package-definition files under root_path and
compares their identifiers against the entries of modules_file.

Two listings are written to the working directory: package files lacking a
manifest entry (ext_eb_repo.txt) and manifest entries lacking a package
file (ext_modules.txt).`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.ConfigureRuntime()

		cfg := recon.DefaultConfig()
		if configPath != "" {
			loaded, err := applyFileConfig(cfg, configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		cfg.RootPath = args[0]
		cfg.ManifestPath = args[1]
		cfg.Verbose = verbose
		if cmd.Flags().Changed("examples") {
			cfg.SampleSize = examples
		}

		return recon.NewService(cfg).Run()
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print sample entries from each difference set")
	rootCmd.Flags().IntVar(&examples, "examples", 5, "sample size per difference set in verbose mode")
	rootCmd.Flags().StringVar(&configPath, "config", "", "optional TOML settings file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "reconctl: %v\n", err)
		os.Exit(1)
	}
}
