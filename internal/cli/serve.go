package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AdeThorMiwa/crockford-uuid/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the identifier HTTP API",
	Long: `Run an HTTP API that generates identifiers and validates submitted ones.
Configured through environment variables: SERVER_ADDR, ID_BYTE_SIZE,
ID_MAX_BATCH, SHUTDOWN_TIMEOUT.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := server.LoadConfig()
		if err != nil {
			return err
		}

		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, log).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
