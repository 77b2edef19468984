// Package cmd defines the command-line interface for mrsummary.
package cmd

import (
	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(commitsCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("base", "b", contract.DefaultBaseBranch, "Base branch for the revision range")
	rootCmd.PersistentFlags().StringP("current", "c", contract.DefaultCurrentBranch, "Current branch for the revision range")
	rootCmd.PersistentFlags().String("format", string(contract.DefaultFormat), "Output format: markdown or json")
	rootCmd.PersistentFlags().StringP("output-file", "o", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Bool("merges-only", false, "Restrict the range to merge commits")
	rootCmd.PersistentFlags().String("since", "", "Only include commits after this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("until", "", "Only include commits before this date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().StringP("verbosity", "v", "", "Log verbosity: debug, info, warn, error")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
