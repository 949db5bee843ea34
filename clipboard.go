package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return normalizeClipboardText(string(output)), nil
		}
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	return normalizeClipboardText(text), nil
}

// normalizeClipboardText converts Windows and old Mac line endings so each
// line can be typed with a single Enter.
func normalizeClipboardText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
