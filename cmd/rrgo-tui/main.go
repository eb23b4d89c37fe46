package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/rrgo/internal/calculation"
	"github.com/rgehrsitz/rrgo/internal/clipboard"
	"github.com/rgehrsitz/rrgo/internal/config"
	"github.com/rgehrsitz/rrgo/internal/tui"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Printf("Error loading .env: %v\n", err)
		os.Exit(1)
	}

	// Optional policy table name, otherwise RRGO_POLICY or the default
	policyName := env.Policy
	if len(os.Args) > 1 {
		policyName = os.Args[1]
	}

	policies, err := config.NewInputParser().LoadPolicies(config.ResolvePolicyFile("", env))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	policy, err := policies.Get(policyName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Usage: rrgo-tui [policy]")
		os.Exit(1)
	}

	// Create the application model
	model := tui.NewModel(calculation.NewEngineWithPolicy(policy), clipboard.System{})

	// Create the Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
