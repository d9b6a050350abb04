package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signadot/plist-format/go-plist/format"

	"github.com/BurntSushi/toml"
)

// FileConfig holds defaults read from the configuration file.  Command
// line options override them.
type FileConfig struct {
	Color    *bool          `toml:"color"`
	Wire     bool           `toml:"wire"`
	Indent   int            `toml:"indent"`
	Strict   bool           `toml:"strict"`
	MaxDepth int            `toml:"max_depth"`
	Input    *format.Format `toml:"input"`
	Output   *format.Format `toml:"output"`
}

// configPath returns $PLIST_CONFIG, or config.toml in the plist directory
// of the user configuration directory.
func configPath() (string, error) {
	if p := os.Getenv("PLIST_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "plist", "config.toml"), nil
}

// loadFileConfig reads the configuration at path.  A missing file gives
// an empty configuration.
func loadFileConfig(path string) (*FileConfig, error) {
	fc := &FileConfig{}
	md, err := toml.DecodeFile(path, fc)
	if errors.Is(err, fs.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if un := md.Undecoded(); len(un) != 0 {
		return nil, fmt.Errorf("config %s: unknown keys %v", path, un)
	}
	if fc.Indent < 0 || fc.MaxDepth < 0 {
		return nil, fmt.Errorf("config %s: indent and max_depth must not be negative", path)
	}
	theLog.Info("loaded config", "path", path)
	return fc, nil
}
