// Package root contains the root command for the application
package root

import (
	"stmt-engine/internal/common"
	"stmt-engine/internal/config"
	"stmt-engine/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "stmt-engine",
		Short: "Parse OCR'd bank statement text into normalized transaction records.",
		Long: `stmt-engine ingests raw text recovered from scanned bank statements and
converts it into a normalized sequence of transaction records: format
detection, per-format parsing, categorization and deduplication.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to stmt-engine!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			common.SetLogger(logging.NewLogrusAdapterFromLogger(Log))

			if delim := config.GetEnv("CSV_DELIMITER", ""); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
