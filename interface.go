package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// newModel loads the window state, colours and font, and sizes the screen
// from the saved windowed size until the terminal reports its own.
func newModel(program *TypingProgram, config *Config) (model, error) {
	m := model{
		program:           program,
		config:            config,
		mode:              ModeTyping,
		selectedFileIndex: -1,
	}

	window, err := loadWindowState(config.WindowStatePath())
	if err != nil {
		return m, err
	}
	m.window = window

	palette, err := loadColours(config.ColoursPath())
	if err != nil {
		return m, err
	}
	m.palette = palette

	if err := m.applyScreen(); err != nil {
		return m, err
	}

	fontSize := max(m.layout.FontSize, 1)
	if config.FontPath != "" {
		m.fonts, err = NewFontManager(config.FontPath, fontSize)
	} else {
		m.fonts, err = NewEmbeddedFontManager(fontSize)
	}
	if err != nil {
		return m, err
	}

	return m, nil
}

// screenSize is the terminal size in fullscreen and the windowed size,
// clamped to the terminal, otherwise.
func (m *model) screenSize() (int, int) {
	width, height := m.window.WindowedSize[0], m.window.WindowedSize[1]
	if m.window.Fullscreen && m.termWidth > 0 && m.termHeight > 0 {
		return m.termWidth, m.termHeight
	}
	if m.termWidth > 0 && width > m.termWidth {
		width = m.termWidth
	}
	if m.termHeight > 0 && height > m.termHeight {
		height = m.termHeight
	}
	return width, height
}

// applyScreen recalculates the layout for the current display mode and saves
// the window state.
func (m *model) applyScreen() error {
	width, height := m.screenSize()
	m.layout = ComputeLayout(width, height)
	log.Printf("screen set: fullscreen=%v size=%dx%d", m.window.Fullscreen, width, height)

	if err := saveWindowState(m.config.WindowStatePath(), m.window); err != nil {
		return fmt.Errorf("save window state: %w", err)
	}
	return nil
}

// setScreen applies the display mode and returns the command that switches
// the alternate screen to match.
func (m *model) setScreen() tea.Cmd {
	if err := m.applyScreen(); err != nil {
		log.Print(err)
		m.errorMessage = err.Error()
	}

	if m.window.Fullscreen {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

func (m *model) toggleFullscreen() tea.Cmd {
	m.window.Fullscreen = !m.window.Fullscreen
	return m.setScreen()
}

func (m *model) stop() tea.Cmd {
	m.program.Stop()
	return tea.Quit
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The first size message only reports the terminal at startup and
		// must not overwrite the saved windowed size
		resized := m.termWidth > 0 && m.termHeight > 0
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if resized && !m.window.Fullscreen {
			m.window.WindowedSize = [2]int{msg.Width, msg.Height}
		}
		return m, m.setScreen()

	case tea.KeyMsg:
		// Quit and the fullscreen toggle work in every mode
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, m.stop()
		case tea.KeyF11:
			return m, m.toggleFullscreen()
		}

		switch m.mode {
		case ModeHelp:
			return m.updateHelp(msg)
		case ModeBrowse:
			return m.updateBrowse(msg)
		default:
			return m.updateTyping(msg)
		}
	}

	if !m.program.Running() {
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, m.stop()
	case tea.KeyF1:
		m.mode = ModeHelp
		return m, nil
	case tea.KeyCtrlR:
		m.clearMessages()
		if err := m.program.LoadFile(""); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("Loaded %s", m.textName())
		}
		return m, nil
	case tea.KeyCtrlO:
		m.clearMessages()
		m.scanSamples()
		m.mode = ModeBrowse
		return m, nil
	case tea.KeyCtrlV:
		m.clearMessages()
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
			return m, nil
		}
		m.program.LoadText(text)
		m.successMessage = "Loaded text from clipboard"
		return m, nil
	case tea.KeyCtrlS:
		m.exportSnapshot(SnapshotPNG)
		return m, nil
	case tea.KeyCtrlT:
		m.exportSnapshot(SnapshotTXT)
		return m, nil
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.program.PreviousCharacter()
		return m, nil
	case tea.KeyEnter:
		m.typeCharacter('\n')
	case tea.KeyTab:
		m.typeCharacter('\t')
	case tea.KeySpace:
		m.typeCharacter(' ')
	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		for _, r := range msg.Runes {
			m.typeCharacter(r)
		}
	}
	return m, nil
}

func (m *model) typeCharacter(ch rune) {
	m.clearMessages()
	if _, err := m.program.NextCharacter(ch); errors.Is(err, ErrEndOfText) {
		m.successMessage = "Finished! Ctrl+R for another sample"
	}
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyF1, tea.KeyEnter:
		m.mode = ModeTyping
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleBrowseNavigation(msg.String()) {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeTyping
		m.errorMessage = ""
	case tea.KeyEnter:
		if m.selectedFileIndex < 0 || m.selectedFileIndex >= len(m.fileList) {
			return m, nil
		}
		path := filepath.Join(m.config.SampleDirectory, m.fileList[m.selectedFileIndex])
		if err := m.program.LoadFile(path); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = fmt.Sprintf("Loaded %s", m.textName())
		m.mode = ModeTyping
	}
	return m, nil
}

func (m *model) scanSamples() {
	m.fileList = nil
	m.selectedFileIndex = -1

	files, err := ListSamples(m.config.SampleDirectory)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.fileList = files

	// Preselect the file currently being typed
	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
		current := filepath.Base(m.program.Filename())
		for i, name := range m.fileList {
			if name == current {
				m.selectedFileIndex = i
				break
			}
		}
	}
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) textName() string {
	if m.program.Filename() == "" {
		return "empty text"
	}
	return filepath.Base(m.program.Filename())
}
