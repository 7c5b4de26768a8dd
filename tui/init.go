package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	cmds := append([]tea.Cmd{
		b.spinnerC.Tick,
		textinput.Blink,
		b.inputC.Focus(),
		b.waitForPlayerState(),
		b.waitForChromeState(),
		b.waitForNotification(),
	}, b.initialCmds...)

	return tea.Batch(cmds...)
}
