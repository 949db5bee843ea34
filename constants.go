package main

type Mode int

const (
	ModeTyping Mode = iota
	ModeBrowse
	ModeHelp
)

type SnapshotFormat int

const (
	SnapshotPNG SnapshotFormat = iota
	SnapshotTXT
)

const (
	defaultFPS            = 60
	defaultWindowedWidth  = 80
	defaultWindowedHeight = 24
	maxWindowedWidth      = 1000
	maxWindowedHeight     = 500

	// Pixel size of one terminal cell in PNG snapshots.
	snapshotCellWidth  = 10
	snapshotCellHeight = 20
)

const (
	statusLineRows = 1
	borderSize     = 1
	blockPadding   = 1
	minLineWidth   = 2*borderSize + 2*blockPadding + 1
)
