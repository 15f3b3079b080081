package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zonebook/zonebook/internal/client"
	"github.com/zonebook/zonebook/internal/config"
	"github.com/zonebook/zonebook/internal/tui"
)

func main() {
	cfg := config.LoadConfig()

	c := client.New(cfg.APIBaseURL)
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
