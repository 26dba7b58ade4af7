package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFileName = "llvmcc.toml"

type fileConfig struct {
	LLVM   llvmConfig   `toml:"llvm"`
	Output outputConfig `toml:"output"`
}

type llvmConfig struct {
	// Headers are resolved relative to the config file.
	Headers []string `toml:"headers"`
	Macro   string   `toml:"macro"`
}

type outputConfig struct {
	Format string `toml:"format"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	base := filepath.Dir(path)
	for i, h := range cfg.LLVM.Headers {
		if !filepath.IsAbs(h) {
			cfg.LLVM.Headers[i] = filepath.Join(base, h)
		}
	}
	return cfg, nil
}

// resolveConfig loads an explicit path, or the nearest llvmcc.toml. Running
// without any config is fine.
func resolveConfig(explicit string) (fileConfig, string, error) {
	if explicit != "" {
		cfg, err := loadConfig(explicit)
		return cfg, explicit, err
	}
	path, ok, err := findConfig(".")
	if err != nil || !ok {
		return fileConfig{}, "", err
	}
	cfg, err := loadConfig(path)
	return cfg, path, err
}
