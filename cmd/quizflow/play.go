package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conorfennell/quizflow/internal/bank"
	"github.com/conorfennell/quizflow/internal/config"
	"github.com/conorfennell/quizflow/internal/flow"
	"github.com/conorfennell/quizflow/internal/tui"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the quiz in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	questions, err := bank.Load(cfg.Quiz.Bank)
	if err != nil {
		return err
	}

	ctrl := flow.New(questions, cfg.FlowOptions())
	defer ctrl.Close()

	// The alternate screen owns the terminal, so logs are discarded.
	model := tui.New(ctrl, cfg.Offer.CheckoutURL, ringBell, zap.NewNop())
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}

func ringBell() error {
	_, err := os.Stderr.WriteString("\a")
	return err
}
