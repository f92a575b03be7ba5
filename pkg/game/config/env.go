package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvRenderer   = "CLEANHOUSE_RENDERER"
	EnvDatabase   = "CLEANHOUSE_DB"
	EnvLayout     = "CLEANHOUSE_LAYOUT"
	EnvJournalDir = "CLEANHOUSE_JOURNAL_DIR"
	EnvLogFile    = "CLEANHOUSE_LOG_FILE"
	EnvSeed       = "CLEANHOUSE_SEED"
)

// LoadDotEnv copies KEY=VALUE lines from path into the process environment.
// A missing file is fine; variables that are already set are left alone.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with the CLEANHOUSE_* variables that are set.
func (c *Config) ApplyEnv() error {
	for key, dst := range map[string]*string{
		EnvRenderer:   &c.Renderer,
		EnvDatabase:   &c.Database,
		EnvLayout:     &c.Layout,
		EnvJournalDir: &c.JournalDir,
		EnvLogFile:    &c.LogFile,
	} {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && strings.TrimSpace(v) != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	return nil
}
