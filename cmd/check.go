package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbank/internal/bank"
	"github.com/abhisek/quizbank/internal/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check [bank]",
	Short: "Validate a question bank",
	Long: "Load a question bank the way play and serve do, then lint it against the bank schema. " +
		"Load errors fail the command; lint findings only fail it with --strict.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.BankPath = args[0]
		}
		logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closer.Close()

		out := cmd.OutOrStdout()
		b, issues, err := bank.Check(cfg.BankPath)
		if err != nil {
			return err
		}
		reportBank(b, cfg, logger)

		fmt.Fprintf(out, "%s: %d questions\n", b.Source(), b.Len())
		if w := b.Warning(); w != nil {
			fmt.Fprintf(out, "warning: %s\n", w.Error())
		}
		for _, issue := range issues {
			fmt.Fprintf(out, "lint: %s\n", issue)
		}
		logger.Debug("check finished", "source", b.Source(), "issues", len(issues))

		strict, _ := cmd.Flags().GetBool("strict")
		if strict && len(issues) > 0 {
			return fmt.Errorf("%s: %d lint issue(s)", b.Source(), len(issues))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Fail when the bank has lint findings")
}
