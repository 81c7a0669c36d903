// Package categorize implements the single-description categorization command.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"stmt-engine/cmd/root"
	"stmt-engine/internal/categorizer"
	"stmt-engine/internal/config"
	"stmt-engine/internal/logging"
)

var description string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long: `Categorize runs the keyword rules against a single description and
prints the resulting category. Useful for checking how a rules file will
classify a merchant before running a full batch.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	if description == "" {
		root.Log.Fatal("A description is required (use -d)")
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	rules, err := categorizer.LoadRules(cfg.Categories.File, logger)
	if err != nil {
		root.Log.Fatalf("Error loading category rules: %v", err)
	}

	category := categorizer.New(rules, logger).Categorize(description)
	fmt.Println(category)
}
