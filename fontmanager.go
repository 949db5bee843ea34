package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const fontDPI = 72

var (
	ErrInvalidFontPath = errors.New("invalid font path")
	ErrFontNotFound    = errors.New("no font file found at given path")
	ErrInvalidFontSize = errors.New("font size must be greater than 0")
)

// FontManager owns a loaded font face. Changing the path or size reloads
// the face immediately.
type FontManager struct {
	path string
	size int
	data []byte
	face font.Face
}

func NewFontManager(path string, size int) (*FontManager, error) {
	fm := &FontManager{}
	if err := fm.Set(path, size); err != nil {
		return nil, err
	}
	return fm, nil
}

// NewEmbeddedFontManager loads the Go Regular font bundled with x/image.
func NewEmbeddedFontManager(size int) (*FontManager, error) {
	if err := validateFontSize(size); err != nil {
		return nil, err
	}
	fm := &FontManager{path: "goregular.ttf", size: size, data: goregular.TTF}
	if err := fm.loadFont(); err != nil {
		return nil, err
	}
	return fm, nil
}

func validateFontPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".ttf" && ext != ".otf" {
		return fmt.Errorf("%w: %q", ErrInvalidFontPath, path)
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrFontNotFound, path)
	}
	return nil
}

func validateFontSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidFontSize, size)
	}
	return nil
}

// loadFont builds a face from the current data, path and size.
func (fm *FontManager) loadFont() error {
	var face font.Face
	if strings.EqualFold(filepath.Ext(fm.path), ".otf") {
		otf, err := opentype.Parse(fm.data)
		if err != nil {
			return fmt.Errorf("failed to parse font %s: %w", fm.path, err)
		}
		face, err = opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    float64(fm.size),
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("failed to create face for %s: %w", fm.path, err)
		}
	} else {
		ttf, err := truetype.Parse(fm.data)
		if err != nil {
			return fmt.Errorf("failed to parse font %s: %w", fm.path, err)
		}
		face = truetype.NewFace(ttf, &truetype.Options{
			Size:    float64(fm.size),
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		})
	}

	if fm.face != nil {
		fm.face.Close()
	}
	fm.face = face
	return nil
}

// Set validates both values before touching the loaded font.
func (fm *FontManager) Set(path string, size int) error {
	if err := validateFontPath(path); err != nil {
		return err
	}
	if err := validateFontSize(size); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}

	prev := *fm
	fm.path, fm.size, fm.data = path, size, data
	if err := fm.loadFont(); err != nil {
		fm.path, fm.size, fm.data = prev.path, prev.size, prev.data
		return err
	}
	return nil
}

func (fm *FontManager) SetPath(path string) error {
	size := fm.size
	if size <= 0 {
		size = 1
	}
	return fm.Set(path, size)
}

func (fm *FontManager) SetSize(size int) error {
	if err := validateFontSize(size); err != nil {
		return err
	}
	prev := fm.size
	fm.size = size
	if err := fm.loadFont(); err != nil {
		fm.size = prev
		return err
	}
	return nil
}

func (fm *FontManager) Path() string {
	return fm.path
}

func (fm *FontManager) Size() int {
	return fm.size
}

func (fm *FontManager) Face() font.Face {
	return fm.face
}
