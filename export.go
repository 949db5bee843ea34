package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/fogleman/gg"
)

// exportSnapshot writes the current frame into the snapshot directory and
// reports the outcome on the status line.
func (m *model) exportSnapshot(format SnapshotFormat) {
	m.clearMessages()

	ext := "png"
	if format == SnapshotTXT {
		ext = "txt"
	}
	stamp := time.Now().Format("20060102-150405")
	filename, err := m.config.GetSnapshotPath(fmt.Sprintf("typist-%s.%s", stamp, ext))
	if err == nil {
		switch format {
		case SnapshotPNG:
			err = m.exportPNG(filename)
		case SnapshotTXT:
			err = m.exportVisualTXT(filename)
		}
	}

	if err != nil {
		m.errorMessage = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.successMessage = fmt.Sprintf("Exported %s", filename)
}

// exportPNG renders the three lines in pixels, using the same proportions
// as the terminal layout.
func (m *model) exportPNG(filename string) error {
	if m.layout.ScreenWidth < 1 || m.layout.ScreenHeight < 1 {
		return fmt.Errorf("nothing to export")
	}

	imageWidth := m.layout.ScreenWidth * snapshotCellWidth
	imageHeight := m.layout.ScreenHeight * snapshotCellHeight
	l := ComputeLayout(imageWidth, imageHeight)

	if err := m.fonts.SetSize(max(l.FontSize, 1)); err != nil {
		return err
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(m.palette.Background)
	dc.Clear()

	x := float64(l.PreviousLineX)
	y := float64(l.PreviousLineY)
	lineWidth := float64(l.LineWidth)
	lineHeight := float64(l.LineHeight)
	cornerRadius := lineHeight / 5

	// Outer corners rounded, active middle block square
	dc.SetColor(m.palette.InactiveBackground)
	dc.DrawRoundedRectangle(x, y, lineWidth, 3*lineHeight, cornerRadius)
	dc.Fill()
	dc.SetColor(m.palette.ActiveBackground)
	dc.DrawRectangle(x, y+lineHeight, lineWidth, lineHeight)
	dc.Fill()

	dc.SetFontFace(m.fonts.Face())
	dc.DrawRectangle(x, y, lineWidth, 3*lineHeight)
	dc.Clip()

	padding := cornerRadius
	if previous, err := m.program.PreviousLine(); err == nil {
		drawTextPNG(dc, previous, x+padding, y+lineHeight/2, m.palette.InactiveForeground)
	}
	m.drawCurrentLinePNG(dc, x+padding, y+lineHeight*1.5, lineWidth-2*padding)
	if next, err := m.program.NextLine(); err == nil {
		drawTextPNG(dc, next, x+padding, y+lineHeight*2.5, m.palette.InactiveForeground)
	}

	dc.ResetClip()
	return dc.SavePNG(filename)
}

func drawTextPNG(dc *gg.Context, text string, x, y float64, c color.Color) {
	dc.SetColor(c)
	dc.DrawStringAnchored(text, x, y, 0, 0.5)
}

// drawCurrentLinePNG draws the current line one character at a time so each
// can take its correctness colour. The line shifts left once the cursor
// passes two thirds of the width.
func (m *model) drawCurrentLinePNG(dc *gg.Context, x, y, width float64) {
	_, col := m.program.Cursor()
	runes := []rune(m.program.CurrentLine())
	keystrokes := m.program.Keystrokes()

	prefix, _ := dc.MeasureString(string(runes[:min(col, len(runes))]))
	if limit := width * 2 / 3; prefix > limit {
		x -= prefix - limit
	}

	for i, r := range runes {
		ch := displayRune(r)
		advance, _ := dc.MeasureString(ch)

		c := m.palette.ActiveForeground
		if i < col && i < len(keystrokes) {
			if keystrokes[i].Correct {
				c = m.palette.CorrectForeground
			} else {
				c = m.palette.IncorrectForeground
			}
		}
		if i == col && !m.program.Finished() {
			dc.SetColor(m.palette.ActiveForeground)
			dc.DrawRectangle(x, y+float64(m.fonts.Size())/2, advance, 2)
			dc.Fill()
		}

		dc.SetColor(c)
		dc.DrawStringAnchored(ch, x, y, 0, 0.5)
		x += advance
	}
}

// exportVisualTXT writes the three lines as plain text with the cursor
// marked by a block character.
func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range m.plainFrame() {
		fmt.Fprintln(file, line)
	}
	return nil
}

func (m *model) plainFrame() []string {
	previous, _ := m.program.PreviousLine()
	next, _ := m.program.NextLine()

	_, col := m.program.Cursor()
	current := []rune(m.program.CurrentLine())
	if !m.program.Finished() {
		if col < len(current) {
			current[col] = '█'
		} else {
			current = append(current, '█')
		}
	}

	return []string{previous, string(current), next}
}
