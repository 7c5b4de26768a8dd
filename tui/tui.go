package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options controls how the interface starts up.
type Options struct {
	// Continue opens the watch history instead of the search prompt.
	Continue bool
}

// Run starts the interactive terminal client and blocks until it exits.
func Run(options *Options) error {
	if options == nil {
		options = &Options{}
	}

	bubble := newBubble()

	if options.Continue {
		bubble.loading = true
		bubble.statesHistory.Push(searchState)
		bubble.setState(loadingState)
		bubble.initialCmds = append(bubble.initialCmds, bubble.loadHistory())
	}

	program := tea.NewProgram(bubble, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
