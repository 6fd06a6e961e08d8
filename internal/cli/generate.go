package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	crockford "github.com/AdeThorMiwa/crockford-uuid"
)

var (
	generateCount int
	generateSize  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print freshly generated identifiers, one per line",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if generateCount < 1 {
			return fmt.Errorf("count must be at least 1, got %d", generateCount)
		}
		if generateSize < 1 {
			return fmt.Errorf("size must be at least 1 byte, got %d", generateSize)
		}

		for i := 0; i < generateCount; i++ {
			id, err := crockford.New(crockford.WithSize(generateSize))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "number of identifiers to generate")
	generateCmd.Flags().IntVar(&generateSize, "size", crockford.DefaultSize, "payload width in bytes")
}
