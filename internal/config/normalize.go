package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDeck()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Curriculum) == "" {
		c.Paths.Curriculum = defaultCurriculumPath
	}
	if c.Paths.Curriculum, err = ExpandPath(c.Paths.Curriculum); err != nil {
		return fmt.Errorf("paths.curriculum: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = ExpandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir
	}
	if c.Paths.CacheDir, err = ExpandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.AudioDir) != "" {
		if c.Paths.AudioDir, err = ExpandPath(c.Paths.AudioDir); err != nil {
			return fmt.Errorf("paths.audio_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.ImageDir) != "" {
		if c.Paths.ImageDir, err = ExpandPath(c.Paths.ImageDir); err != nil {
			return fmt.Errorf("paths.image_dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeDeck() {
	if c.Deck.WindowSize == 0 {
		c.Deck.WindowSize = defaultWindowSize
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
