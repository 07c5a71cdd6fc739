package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbank/internal/app"
	"github.com/abhisek/quizbank/internal/logging"
	"github.com/abhisek/quizbank/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take a quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("no-intro", false, "start directly on the questions")
}

// runPlay loads the bank and launches the TUI. Logs never go to the terminal
// the UI draws on.
func runPlay(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	b, err := loadBank(cfg, logger)
	if err != nil {
		logger.Error("load bank", "err", err)
		return err
	}

	// Absent when invoked through the root command.
	skipIntro, _ := cmd.Flags().GetBool("no-intro")

	state := quiz.NewAppState(b, cfg.Size, quiz.WithLogger(logger))
	return app.Run(app.Options{State: state, SkipIntro: skipIntro})
}
