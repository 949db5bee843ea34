package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const windowStateFile = "window_state.json"

// WindowState is the display mode persisted between runs.
type WindowState struct {
	WindowedSize [2]int
	Fullscreen   bool
}

func defaultWindowState() WindowState {
	return WindowState{
		WindowedSize: [2]int{defaultWindowedWidth, defaultWindowedHeight},
		Fullscreen:   true,
	}
}

// loadWindowState reads the window state file. A missing file yields the
// defaults; anything unreadable is an error.
func loadWindowState(path string) (WindowState, error) {
	state := defaultWindowState()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("read window state: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return state, fmt.Errorf("window state %s: invalid JSON", path)
	}

	size := gjson.GetBytes(data, "windowed_size")
	if size.Exists() {
		dims := size.Array()
		if !size.IsArray() || len(dims) != 2 || dims[0].Type != gjson.Number || dims[1].Type != gjson.Number {
			return state, fmt.Errorf("window state %s: windowed_size must be [width, height]", path)
		}
		state.WindowedSize = [2]int{
			clampDimension(dims[0].Int(), maxWindowedWidth),
			clampDimension(dims[1].Int(), maxWindowedHeight),
		}
	}

	fullscreen := gjson.GetBytes(data, "fullscreen")
	if fullscreen.Exists() {
		if fullscreen.Type != gjson.True && fullscreen.Type != gjson.False {
			return state, fmt.Errorf("window state %s: fullscreen must be a boolean", path)
		}
		state.Fullscreen = fullscreen.Bool()
	}

	return state, nil
}

func saveWindowState(path string, state WindowState) error {
	data, err := sjson.SetBytes([]byte("{}"), "windowed_size", []int{state.WindowedSize[0], state.WindowedSize[1]})
	if err != nil {
		return fmt.Errorf("encode window state: %w", err)
	}
	data, err = sjson.SetBytes(data, "fullscreen", state.Fullscreen)
	if err != nil {
		return fmt.Errorf("encode window state: %w", err)
	}
	data = pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "    "})

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// clampDimension keeps a hand-edited size within what a terminal can show.
func clampDimension(n int64, ceiling int) int {
	if n < 1 {
		return 1
	}
	if n > int64(ceiling) {
		return ceiling
	}
	return int(n)
}
