package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zjrosen/formatfield/internal/config"
	"github.com/zjrosen/formatfield/internal/ui/form"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive form demo",
	Long:  `Opens a form built from the configured fields. Every keystroke is reformatted live; ctrl+z and ctrl+y walk the per-field history.`,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	m := form.New("formatfield", cfg.Fields)
	p := tea.NewProgram(m)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if fm, ok := final.(form.Model); ok {
		fmt.Println("Final values:")
		fmt.Print(fm.Summary())
	}
	return nil
}
