package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SampleDirectory   string
	ConfigDirectory   string
	FontPath          string
	FPS               int
	SnapshotDirectory string
	DebugLog          string
}

func defaultConfig() *Config {
	return &Config{
		SampleDirectory: "samples",
		ConfigDirectory: "config",
		FPS:             defaultFPS,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFile(filepath.Join(homeDir, ".typistrc"), homeDir)
}

// loadConfigFile parses key=value lines. Unknown keys and bad values are
// ignored and leave the default in place.
func loadConfigFile(configPath, homeDir string) *Config {
	config := defaultConfig()

	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "sampledir", "sample_dir", "samples":
			config.SampleDirectory = expandPath(value, homeDir)
		case "configdir", "config_dir":
			config.ConfigDirectory = expandPath(value, homeDir)
		case "font", "font_path", "fontpath":
			config.FontPath = expandPath(value, homeDir)
		case "fps":
			if fps, err := strconv.Atoi(value); err == nil && fps > 0 {
				config.FPS = fps
			}
		case "snapshotdir", "snapshot_dir":
			config.SnapshotDirectory = expandPath(value, homeDir)
		case "debuglog", "debug_log":
			config.DebugLog = expandPath(value, homeDir)
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) WindowStatePath() string {
	return filepath.Join(c.ConfigDirectory, windowStateFile)
}

func (c *Config) ColoursPath() string {
	return filepath.Join(c.ConfigDirectory, coloursFile)
}

// GetSnapshotPath places filename inside the snapshot directory, creating it
// if needed.
func (c *Config) GetSnapshotPath(filename string) (string, error) {
	if c.SnapshotDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SnapshotDirectory, 0755); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}
	return filepath.Join(c.SnapshotDirectory, filename), nil
}
