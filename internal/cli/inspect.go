package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	crockford "github.com/AdeThorMiwa/crockford-uuid"
)

var inspectSize int

var inspectCmd = &cobra.Command{
	Use:   "inspect <identifier>",
	Short: "Validate an identifier and print its canonical form and conversions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := crockford.Parse(args[0], crockford.WithSize(inspectSize))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "canonical: %s\n", id)
		fmt.Fprintf(out, "integer:   %s\n", id.Int())
		fmt.Fprintf(out, "payload:   %x\n", id.Bytes())
		fmt.Fprintf(out, "checksum:  %c (%d)\n", crockford.ChecksumSymbol(id.Checksum()), id.Checksum())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVar(&inspectSize, "size", crockford.DefaultSize, "payload width in bytes")
}
