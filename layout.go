package main

// Layout holds the scaling constants derived from the screen size. Units are
// whatever the screen size is measured in: cells on the terminal, pixels in
// a PNG snapshot.
type Layout struct {
	ScreenWidth   int
	ScreenHeight  int
	LineWidth     int
	LineHeight    int
	PreviousLineX int
	PreviousLineY int
	FontSize      int
}

// ComputeLayout sizes each line block at 75% of the screen width and 7.5% of
// the screen width high, and centers the three blocks.
func ComputeLayout(width, height int) Layout {
	l := Layout{
		ScreenWidth:  width,
		ScreenHeight: height,
		LineWidth:    width * 75 / 100,
		LineHeight:   width * 75 / 1000,
	}
	l.PreviousLineX = (width - l.LineWidth) / 2
	l.PreviousLineY = (height - 3*l.LineHeight) / 2
	l.FontSize = height / 10
	return l
}

// fitTerminal clamps the block height so the bordered stack of three blocks
// plus the status line fit in the screen, then recenters. LineWidth keeps
// the border inside it.
func (l Layout) fitTerminal() Layout {
	rows := l.ScreenHeight - statusLineRows - 2*borderSize
	maxHeight := rows / 3
	if l.LineHeight > maxHeight {
		l.LineHeight = maxHeight
	}
	if l.LineHeight < 1 {
		l.LineHeight = 1
	}
	if l.LineWidth < minLineWidth {
		l.LineWidth = minLineWidth
	}
	l.PreviousLineY = (rows - 3*l.LineHeight) / 2
	if l.PreviousLineY < 0 {
		l.PreviousLineY = 0
	}
	if l.PreviousLineX < 0 {
		l.PreviousLineX = 0
	}
	return l
}

// textWidth is the number of cells available for text inside a block.
func (l Layout) textWidth() int {
	w := l.LineWidth - 2*borderSize - 2*blockPadding
	if w < 1 {
		return 1
	}
	return w
}
