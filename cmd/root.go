package cmd

import (
	"charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizbank/internal/bank"
	"github.com/abhisek/quizbank/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizbank",
	Short: "Multiple-choice quiz over a question bank",
	Long: "Quizbank samples a few questions from a JSON or YAML question bank, " +
		"lets you answer them in the terminal or a browser, and grades the attempt out of 10.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("bank", "", "Path to the question bank (overrides QUIZBANK_BANK)")
	flags.Int("size", 0, "Questions per quiz (overrides QUIZBANK_SIZE)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig merges defaults, the --config file, QUIZBANK_* env vars and
// any flags set on the command line, in that order.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("bank") {
		cfg.BankPath, _ = flags.GetString("bank")
	}
	if flags.Changed("size") {
		cfg.Size, _ = flags.GetInt("size")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Lookup("max-sessions") != nil && flags.Changed("max-sessions") {
		cfg.MaxSessions, _ = flags.GetInt("max-sessions")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadBank reads the configured bank and reports an undersized one.
func loadBank(cfg config.Config, logger *log.Logger) (*bank.Bank, error) {
	b, err := bank.Load(cfg.BankPath)
	if err != nil {
		return nil, err
	}
	reportBank(b, cfg, logger)
	return b, nil
}

// reportBank logs the bank's size and any advisory about it.
func reportBank(b *bank.Bank, cfg config.Config, logger *log.Logger) {
	logger.Debug("bank loaded", "source", b.Source(), "questions", b.Len())
	if w := b.Warning(); w != nil {
		logger.Warn(w.Error())
	}
	if cfg.Size > b.Len() {
		logger.Info("quiz size exceeds bank, using every question", "size", cfg.Size, "questions", b.Len())
	}
}
