package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (m model) View() string {
	switch m.mode {
	case ModeHelp:
		return m.helpView()
	case ModeBrowse:
		return m.browseView()
	default:
		return m.typingView()
	}
}

// typingView draws the previous, current and next lines as three stacked
// blocks inside a rounded border, then the status line.
func (m model) typingView() string {
	l := m.layout.fitTerminal()
	background := hexColour(m.palette.Background)
	textWidth := l.textWidth()

	inactive := lipgloss.NewStyle().
		Width(l.LineWidth-2*borderSize).
		Height(l.LineHeight).
		Padding(0, blockPadding).
		AlignVertical(lipgloss.Center).
		Background(hexColour(m.palette.InactiveBackground)).
		Foreground(hexColour(m.palette.InactiveForeground))
	active := inactive.Copy().
		Background(hexColour(m.palette.ActiveBackground)).
		Foreground(hexColour(m.palette.ActiveForeground))

	// The first and last rows have no neighbour, so their block stays empty
	previous, _ := m.program.PreviousLine()
	next, _ := m.program.NextLine()

	stack := lipgloss.JoinVertical(lipgloss.Left,
		inactive.Render(truncateCells(previous, textWidth)),
		active.Render(m.renderCurrentLine(textWidth)),
		inactive.Render(truncateCells(next, textWidth)),
	)
	stack = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(hexColour(m.palette.InactiveBackground)).
		BorderBackground(background).
		Render(stack)

	body := lipgloss.NewStyle().
		Background(background).
		Padding(l.PreviousLineY, 0, 0, l.PreviousLineX).
		Render(stack)
	body = lipgloss.Place(l.ScreenWidth, max(l.ScreenHeight-statusLineRows, 1), lipgloss.Left, lipgloss.Top, body,
		lipgloss.WithWhitespaceBackground(background))

	return body + "\n" + m.statusLine(l.ScreenWidth)
}

// renderCurrentLine colours the typed part of the line by correctness and
// underlines the cursor. Long lines scroll so the cursor stays in view.
func (m model) renderCurrentLine(width int) string {
	_, col := m.program.Cursor()
	runes := []rune(m.program.CurrentLine())
	keystrokes := m.program.Keystrokes()
	finished := m.program.Finished()

	base := lipgloss.NewStyle().
		Background(hexColour(m.palette.ActiveBackground)).
		Foreground(hexColour(m.palette.ActiveForeground))

	start := 0
	if margin := width * 2 / 3; col > margin {
		start = col - margin
	}

	var result strings.Builder
	used := 0
	for i := start; i <= len(runes); i++ {
		var ch string
		if i == len(runes) {
			// Cursor sitting on the newline sentinel
			if i != col || finished {
				break
			}
			ch = " "
		} else {
			ch = displayRune(runes[i])
		}

		cells := runewidth.StringWidth(ch)
		if used+cells > width {
			break
		}
		used += cells

		style := base.Copy()
		switch {
		case i < col && i < len(keystrokes) && keystrokes[i].Correct:
			style = style.Foreground(hexColour(m.palette.CorrectForeground))
		case i < col && i < len(keystrokes):
			style = style.Background(hexColour(m.palette.IncorrectForeground))
		case i == col && !finished:
			style = style.Underline(true)
		}
		result.WriteString(style.Render(ch))
	}
	return result.String()
}

func displayRune(r rune) string {
	if r == '\t' {
		return " "
	}
	return string(r)
}

func truncateCells(s string, width int) string {
	return runewidth.Truncate(strings.ReplaceAll(s, "\t", " "), width, "…")
}

func (m model) modeString() string {
	switch m.mode {
	case ModeTyping:
		return "TYPING"
	case ModeBrowse:
		return "BROWSE"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

func (m model) statusLine(width int) string {
	row, col := m.program.Cursor()
	display := "WINDOWED"
	if m.window.Fullscreen {
		display = "FULLSCREEN"
	}

	status := fmt.Sprintf("Mode: %s | %s | Line %d/%d Col %d", m.modeString(), display, row+1, m.program.LineCount(), col)
	if m.program.Finished() {
		status += " | Finished"
	}
	if m.successMessage != "" {
		status += fmt.Sprintf(" | %s", m.successMessage)
	}
	if m.errorMessage != "" {
		status += fmt.Sprintf(" | ERROR: %s", m.errorMessage)
	} else if m.successMessage == "" {
		status += " | F1 for help | Esc to quit"
	}

	if width > 0 {
		status = runewidth.Truncate(status, width, "")
	}
	return status
}

func (m model) browseView() string {
	width := max(m.layout.ScreenWidth, 1)

	var result strings.Builder
	result.WriteString("Select a sample:\n")
	result.WriteString(strings.Repeat("─", width))
	result.WriteString("\n")

	if len(m.fileList) == 0 {
		result.WriteString(fmt.Sprintf("(No files found in %s)\n", m.config.SampleDirectory))
	} else {
		// Leave room for header, separators and status
		maxFiles := m.browsePageSize()

		startIdx := 0
		if m.selectedFileIndex >= maxFiles {
			startIdx = m.selectedFileIndex - maxFiles + 1
		}
		endIdx := min(startIdx+maxFiles, len(m.fileList))

		for i := startIdx; i < endIdx; i++ {
			if i == m.selectedFileIndex {
				result.WriteString("> ")
				result.WriteString(m.fileList[i])
				result.WriteString(" <")
			} else {
				result.WriteString("  ")
				result.WriteString(m.fileList[i])
			}
			result.WriteString("\n")
		}
	}

	result.WriteString(strings.Repeat("─", width))
	result.WriteString("\n")
	if m.errorMessage != "" {
		result.WriteString(fmt.Sprintf("Mode: BROWSE | ERROR: %s | ↑/↓=navigate, Enter=retry, Esc=cancel", m.errorMessage))
	} else {
		result.WriteString("Mode: BROWSE | ↑/↓/j/k=navigate, Enter=load, Esc=cancel")
	}
	return result.String()
}

func (m model) helpView() string {
	helpLines := []string{
		"Typist Help",
		"===========",
		"",
		"Typing:",
		"-------",
		"  Type the highlighted line; Enter ends each line",
		"  Backspace        Step back one character",
		"  Correct characters turn green, mistakes are marked red",
		"",
		"Texts:",
		"------",
		"  Ctrl+R           Load another random sample",
		"  Ctrl+O           Browse the sample directory",
		"  Ctrl+V           Practise the text on the clipboard",
		"",
		"Snapshots:",
		"----------",
		"  Ctrl+S           Export the screen as PNG",
		"  Ctrl+T           Export the screen as plain text",
		"",
		"Display:",
		"--------",
		"  F11              Toggle fullscreen",
		"  F1               Toggle this help",
		"  Esc / Ctrl+C     Quit",
		"",
		"Press Esc, Enter or F1 to return",
	}
	return strings.Join(helpLines, "\n")
}
