package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// newlineSentinel is the character expected at the end of every line.
const newlineSentinel = '\n'

var (
	ErrFileNotFound = errors.New("no file found at path")
	ErrLineBoundary = errors.New("line out of range")
	ErrEndOfText    = errors.New("end of text reached")
)

// TypingProgram holds the text being practised and the cursor moving
// through it. It has no knowledge of how it is displayed.
type TypingProgram struct {
	text      []string
	row       int
	col       int
	running   bool
	finished  bool
	history   []Keystroke
	sampleDir string
	filename  string
}

func NewTypingProgram(sampleDir string) *TypingProgram {
	return &TypingProgram{
		text:      []string{""},
		sampleDir: sampleDir,
	}
}

func (p *TypingProgram) Start() {
	p.running = true
}

func (p *TypingProgram) Stop() {
	p.running = false
}

func (p *TypingProgram) Running() bool {
	return p.running
}

// LoadFile replaces the text with the lines of the file at path. An empty
// path picks a random file from the sample directory.
func (p *TypingProgram) LoadFile(path string) error {
	if path == "" {
		samples, err := ListSamples(p.sampleDir)
		if err != nil {
			return err
		}
		if len(samples) == 0 {
			p.setText([]string{""}, "")
			return nil
		}
		path = filepath.Join(p.sampleDir, samples[rand.Intn(len(samples))])
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	lines, err := readLines(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	p.setText(lines, path)
	return nil
}

// LoadText replaces the text with the lines of an in-memory string.
func (p *TypingProgram) LoadText(text string) {
	lines, _ := readLines(strings.NewReader(text))
	p.setText(lines, "")
}

func (p *TypingProgram) setText(lines []string, filename string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	p.text = lines
	p.filename = filename
	p.row, p.col = 0, 0
	p.finished = false
	p.history = p.history[:0]
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRightFunc(scanner.Text(), unicode.IsSpace))
	}
	return lines, scanner.Err()
}

// readCursor returns the character under the cursor, or the newline
// sentinel at end of line.
func (p *TypingProgram) readCursor() rune {
	line := []rune(p.text[p.row])
	if p.col == len(line) {
		return newlineSentinel
	}
	return line[p.col]
}

// moveCursorForwards advances one position, wrapping to the next line at EOL.
// Returns true once the end of the last line has been consumed.
func (p *TypingProgram) moveCursorForwards() bool {
	if p.col == len([]rune(p.text[p.row])) {
		if p.row == len(p.text)-1 {
			return true
		}
		p.row++
		p.col = 0
		return false
	}
	p.col++
	return false
}

// NextCharacter advances the cursor by one position and reports whether ch
// was the expected character.
func (p *TypingProgram) NextCharacter(ch rune) (bool, error) {
	if p.finished {
		return false, ErrEndOfText
	}

	expected := p.readCursor()
	correct := ch == expected
	p.history = append(p.history, Keystroke{
		Row:      p.row,
		Col:      p.col,
		Expected: expected,
		Typed:    ch,
		Correct:  correct,
	})
	p.finished = p.moveCursorForwards()
	return correct, nil
}

// PreviousCharacter undoes the last keystroke, moving the cursor back to
// where it was typed.
func (p *TypingProgram) PreviousCharacter() bool {
	keystroke, ok := p.popKeystroke()
	if !ok {
		return false
	}
	p.row, p.col = keystroke.Row, keystroke.Col
	p.finished = false
	return true
}

func (p *TypingProgram) PreviousLine() (string, error) {
	if p.row-1 < 0 {
		return "", fmt.Errorf("previous line of row %d: %w", p.row, ErrLineBoundary)
	}
	return p.text[p.row-1], nil
}

func (p *TypingProgram) CurrentLine() string {
	return p.text[p.row]
}

func (p *TypingProgram) NextLine() (string, error) {
	if p.row+1 >= len(p.text) {
		return "", fmt.Errorf("next line of row %d: %w", p.row, ErrLineBoundary)
	}
	return p.text[p.row+1], nil
}

// Cursor returns (row, column).
func (p *TypingProgram) Cursor() (int, int) {
	return p.row, p.col
}

func (p *TypingProgram) LineCount() int {
	return len(p.text)
}

func (p *TypingProgram) Finished() bool {
	return p.finished
}

// Filename is the path the text was loaded from. It is empty for clipboard
// text and for an empty sample directory.
func (p *TypingProgram) Filename() string {
	return p.filename
}
