// Package detect implements the format detection command.
package detect

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stmt-engine/cmd/root"
	"stmt-engine/internal/detect"
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the statement format of an extracted text file",
	Long: `Detect reads a text file produced by OCR extraction and reports which
bank statement format it matches, or "unknown" when no format marker is
present. An unknown format is a normal outcome, not an error: processing
such a file falls back to the generic parser.`,
	Run: detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (use -i)")
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	format := detect.Detect(string(data))
	fmt.Printf("Format: %s\nBank:   %s\n", format, format.BankName())
}
