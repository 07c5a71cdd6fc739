package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbank/internal/logging"
	"github.com/abhisek/quizbank/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz as a web form",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closer.Close()

		b, err := loadBank(cfg, logger)
		if err != nil {
			return err
		}

		srv, err := web.NewServer(web.Options{
			Bank:        b,
			Size:        cfg.Size,
			Logger:      logger,
			MaxSessions: cfg.MaxSessions,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return web.Serve(ctx, cfg.Addr, srv.Handler(), logger)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUIZBANK_ADDR, default :8080)")
	serveCmd.Flags().Int("max-sessions", 0, "Browser sessions kept in memory (overrides QUIZBANK_MAX_SESSIONS, default 1000)")
}
