package config

import (
	"errors"
	"fmt"
	"t9dict/internal/app/infrastructure/keypad"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error; got %s", cfg.App.LogLevel)
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if cfg.App.GinMode != "" && !validModes[cfg.App.GinMode] {
		return fmt.Errorf("app.gin_mode must be one of debug, release, test; got %s", cfg.App.GinMode)
	}

	if cfg.App.ListenAddr == "" {
		return errors.New("app.listen_addr is required")
	}

	// log
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAgeDays < 0 {
		return errors.New("log.max_size_mb, log.max_backups and log.max_age_days must be >= 0")
	}

	// dictionary
	if cfg.Dictionary.WordsPath == "" {
		return errors.New("dictionary.words_path is required")
	}
	if cfg.Dictionary.MaxWordLength == 0 {
		cfg.Dictionary.MaxWordLength = keypad.MaxWordLength
	}
	if cfg.Dictionary.MaxWordLength != keypad.MaxWordLength {
		return fmt.Errorf("dictionary.max_word_length is fixed at %d; got %d", keypad.MaxWordLength, cfg.Dictionary.MaxWordLength)
	}

	// cache
	if cfg.Cache.Enabled && cfg.Cache.Capacity <= 0 {
		return errors.New("cache.capacity must be > 0 when the cache is enabled")
	}
	if cfg.Cache.TTL < 0 {
		return errors.New("cache.ttl must be >= 0")
	}

	// limiter
	if (cfg.Limiter.Requests != 0 && cfg.Limiter.Per == 0) || (cfg.Limiter.Requests == 0 && cfg.Limiter.Per != 0) {
		return errors.New("limiter.requests and limiter.per must both be set or both be zero")
	}
	if cfg.Limiter.Requests < 0 || cfg.Limiter.Per < 0 {
		return errors.New("limiter.requests and limiter.per must be >= 0")
	}

	return nil
}
