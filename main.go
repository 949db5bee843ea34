package main

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("typist: ")

	config := loadConfig()

	if config.DebugLog != "" {
		f, err := tea.LogToFile(config.DebugLog, "typist")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// An explicit text file may be given as the only argument
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	program := NewTypingProgram(config.SampleDirectory)
	if err := program.LoadFile(path); err != nil {
		log.Fatal(err)
	}

	m, err := newModel(program, config)
	if err != nil {
		log.Fatal(err)
	}

	options := []tea.ProgramOption{tea.WithFPS(config.FPS)}
	if m.window.Fullscreen {
		options = append(options, tea.WithAltScreen())
	}

	// Keep stray log output off the screen while the TUI owns it
	if config.DebugLog == "" {
		log.SetOutput(io.Discard)
	}

	program.Start()
	_, err = tea.NewProgram(m, options...).Run()
	program.Stop()

	log.SetOutput(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}
