package main

type model struct {
	program           *TypingProgram
	config            *Config
	palette           Palette
	fonts             *FontManager
	window            WindowState
	termWidth         int
	termHeight        int
	layout            Layout
	mode              Mode
	fileList          []string
	selectedFileIndex int
	errorMessage      string
	successMessage    string
}
