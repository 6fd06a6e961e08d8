// Package cli implements the crockford command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crockford",
	Short: "Generate and validate checksummed Crockford Base32 identifiers",
	Long: `crockford generates compact, human-typeable unique identifiers: a block of
cryptographically random bytes encoded as Crockford Base32 with a single
trailing checksum character that catches transcription errors.`,
	SilenceUsage: true,
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
