package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}

func newTestModel(t *testing.T, text string) model {
	t.Helper()
	root := t.TempDir()
	config := defaultConfig()
	config.ConfigDirectory = filepath.Join(root, "config")
	config.SampleDirectory = filepath.Join(root, "samples")
	config.SnapshotDirectory = filepath.Join(root, "shots")
	if err := os.MkdirAll(config.SampleDirectory, 0755); err != nil {
		t.Fatal(err)
	}

	program := NewTypingProgram(config.SampleDirectory)
	program.LoadText(text)
	program.Start()

	m, err := newModel(program, config)
	if err != nil {
		t.Fatalf("newModel() error = %v", err)
	}
	return m
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func typeString(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		var msg tea.KeyMsg
		switch r {
		case '\n':
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case ' ':
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		m, _ = update(t, m, msg)
	}
	return m
}

func TestModel_NewModelSavesWindowState(t *testing.T) {
	m := newTestModel(t, "cat\n")

	if _, err := os.Stat(m.config.WindowStatePath()); err != nil {
		t.Fatalf("window state not written at startup: %v", err)
	}
	if m.layout.ScreenWidth != defaultWindowedWidth || m.layout.ScreenHeight != defaultWindowedHeight {
		t.Errorf("initial screen = %dx%d, want saved windowed size", m.layout.ScreenWidth, m.layout.ScreenHeight)
	}
	if m.fonts == nil || m.fonts.Size() != m.layout.FontSize {
		t.Errorf("font not sized from layout")
	}
}

func TestModel_NewModelBadFont(t *testing.T) {
	root := t.TempDir()
	config := defaultConfig()
	config.ConfigDirectory = root
	config.FontPath = filepath.Join(root, "font.bmp")

	if _, err := newModel(NewTypingProgram(root), config); err == nil {
		t.Fatal("newModel() with invalid font path succeeded")
	}
}

func TestModel_Typing(t *testing.T) {
	m := newTestModel(t, "cat\ndog\n")

	m = typeString(t, m, "cat")
	if row, col := m.program.Cursor(); row != 0 || col != 3 {
		t.Fatalf("Cursor() = (%d,%d), want (0,3)", row, col)
	}
	m = typeString(t, m, "\n")
	if row, col := m.program.Cursor(); row != 1 || col != 0 {
		t.Fatalf("Cursor() = (%d,%d), want (1,0)", row, col)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if row, col := m.program.Cursor(); row != 0 || col != 3 {
		t.Errorf("after backspace Cursor() = (%d,%d), want (0,3)", row, col)
	}
}

func TestModel_TypingToEnd(t *testing.T) {
	m := newTestModel(t, "a b\n")

	m = typeString(t, m, "a b\n")
	if !m.program.Finished() {
		t.Fatal("program not finished")
	}

	m = typeString(t, m, "x")
	if !strings.Contains(m.successMessage, "Finished") {
		t.Errorf("successMessage = %q, want finished notice", m.successMessage)
	}
	if !strings.Contains(m.View(), "Finished") {
		t.Errorf("View() missing finished status")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel(t, "cat\n")
		m, cmd := update(t, m, tea.KeyMsg{Type: key})
		if m.program.Running() {
			t.Errorf("%v: program still running", key)
		}
		if cmd == nil {
			t.Fatalf("%v: no command returned", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: command is not tea.Quit", key)
		}
	}
}

func TestModel_ToggleFullscreen(t *testing.T) {
	m := newTestModel(t, "cat\n")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.window.Fullscreen || m.layout.ScreenWidth != 120 {
		t.Fatalf("fullscreen layout = %+v", m.layout)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyF11})
	if m.window.Fullscreen {
		t.Fatal("still fullscreen after F11")
	}
	if cmd == nil {
		t.Fatal("no alt screen command after F11")
	}
	if m.layout.ScreenWidth != defaultWindowedWidth || m.layout.ScreenHeight != defaultWindowedHeight {
		t.Errorf("windowed screen = %dx%d, want %dx%d", m.layout.ScreenWidth, m.layout.ScreenHeight, defaultWindowedWidth, defaultWindowedHeight)
	}

	saved, err := loadWindowState(m.config.WindowStatePath())
	if err != nil {
		t.Fatal(err)
	}
	if saved.Fullscreen {
		t.Error("saved state still fullscreen")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF11})
	if !m.window.Fullscreen || m.layout.ScreenWidth != 120 {
		t.Errorf("back to fullscreen layout = %+v", m.layout)
	}
}

func TestModel_ResizeWindowed(t *testing.T) {
	m := newTestModel(t, "cat\n")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF11})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.window.WindowedSize != [2]int{100, 30} {
		t.Errorf("WindowedSize = %v, want [100 30]", m.window.WindowedSize)
	}
	if m.layout.LineWidth != 75 {
		t.Errorf("LineWidth = %d, want 75", m.layout.LineWidth)
	}

	saved, err := loadWindowState(m.config.WindowStatePath())
	if err != nil {
		t.Fatal(err)
	}
	if saved.WindowedSize != [2]int{100, 30} {
		t.Errorf("saved WindowedSize = %v", saved.WindowedSize)
	}
}

func TestModel_StartupSizeKeepsSavedWindowedSize(t *testing.T) {
	root := t.TempDir()
	config := defaultConfig()
	config.ConfigDirectory = root
	config.SampleDirectory = root
	if err := saveWindowState(config.WindowStatePath(), WindowState{WindowedSize: [2]int{40, 12}}); err != nil {
		t.Fatal(err)
	}

	program := NewTypingProgram(root)
	program.LoadText("cat\n")
	program.Start()
	m, err := newModel(program, config)
	if err != nil {
		t.Fatal(err)
	}

	// bubbletea reports the terminal size once at startup
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.window.WindowedSize != [2]int{40, 12} {
		t.Errorf("WindowedSize = %v after startup size, want [40 12]", m.window.WindowedSize)
	}
	if m.layout.ScreenWidth != 40 || m.layout.ScreenHeight != 12 {
		t.Errorf("screen = %dx%d, want 40x12", m.layout.ScreenWidth, m.layout.ScreenHeight)
	}
	saved, err := loadWindowState(config.WindowStatePath())
	if err != nil {
		t.Fatal(err)
	}
	if saved.WindowedSize != [2]int{40, 12} {
		t.Errorf("saved WindowedSize = %v, want [40 12]", saved.WindowedSize)
	}

	// A later resize is a real window change
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.window.WindowedSize != [2]int{90, 30} {
		t.Errorf("WindowedSize = %v after resize, want [90 30]", m.window.WindowedSize)
	}
	saved, err = loadWindowState(config.WindowStatePath())
	if err != nil {
		t.Fatal(err)
	}
	if saved.WindowedSize != [2]int{90, 30} {
		t.Errorf("saved WindowedSize = %v after resize, want [90 30]", saved.WindowedSize)
	}
}

func TestModel_ResizeFullscreenKeepsWindowedSize(t *testing.T) {
	m := newTestModel(t, "cat\n")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 150, Height: 50})
	if m.window.WindowedSize != [2]int{defaultWindowedWidth, defaultWindowedHeight} {
		t.Errorf("WindowedSize changed in fullscreen: %v", m.window.WindowedSize)
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, "first\nsecond\nthird\n")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = typeString(t, m, "first\n")

	view := stripANSI(m.View())
	for _, want := range []string{"first", "second", "third", "Line 2/3"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines > 24 {
		t.Errorf("View() has %d lines, screen has 24", lines)
	}
}

func TestModel_Help(t *testing.T) {
	m := newTestModel(t, "cat\n")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if m.mode != ModeHelp || !strings.Contains(m.View(), "Typist Help") {
		t.Fatal("F1 did not open help")
	}

	// Esc closes help instead of quitting
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeTyping || !m.program.Running() {
		t.Errorf("mode = %v running = %v after Esc in help", m.mode, m.program.Running())
	}
}

func TestModel_Browse(t *testing.T) {
	m := newTestModel(t, "cat\n")
	writeFile(t, m.config.SampleDirectory, "a.txt", "alpha\n")
	writeFile(t, m.config.SampleDirectory, "b.txt", "beta\n")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.mode != ModeBrowse {
		t.Fatalf("mode = %v, want browse", m.mode)
	}
	if len(m.fileList) != 2 || m.selectedFileIndex != 0 {
		t.Fatalf("fileList = %v selected = %d", m.fileList, m.selectedFileIndex)
	}
	if !strings.Contains(m.View(), "> a.txt <") {
		t.Errorf("browse view missing selection marker")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeTyping {
		t.Fatalf("mode = %v after Enter, want typing", m.mode)
	}
	if got := m.program.CurrentLine(); got != "beta" {
		t.Errorf("CurrentLine() = %q, want beta", got)
	}
}

func TestModel_BrowseNavigation(t *testing.T) {
	m := newTestModel(t, "cat\n")
	m.fileList = []string{"a", "b", "c"}
	m.selectedFileIndex = 0

	tests := []struct {
		key  string
		want int
	}{
		{"up", 2},
		{"down", 0},
		{"j", 1},
		{"G", 2},
		{"k", 1},
		{"g", 0},
		{"pgdown", 2},
		{"pgup", 0},
	}
	for _, tt := range tests {
		if !m.handleBrowseNavigation(tt.key) {
			t.Fatalf("%q not handled", tt.key)
		}
		if m.selectedFileIndex != tt.want {
			t.Errorf("after %q selected = %d, want %d", tt.key, m.selectedFileIndex, tt.want)
		}
	}

	if m.handleBrowseNavigation("x") {
		t.Error("x handled as navigation")
	}
}

func TestModel_RandomSample(t *testing.T) {
	m := newTestModel(t, "cat\n")
	writeFile(t, m.config.SampleDirectory, "only.txt", "sample text\n")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := m.program.CurrentLine(); got != "sample text" {
		t.Errorf("CurrentLine() = %q, want sample text", got)
	}
	if !strings.Contains(m.successMessage, "only.txt") {
		t.Errorf("successMessage = %q", m.successMessage)
	}
}
