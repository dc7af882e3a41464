package config

import (
	"t9dict/internal/app/infrastructure/keypad"
	"time"
)

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel:   "info",
			GinMode:    "release",
			ListenAddr: ":8080",
		},
		Log: Log{
			File:       "logs/main.log",
			MaxSizeMB:  64,
			MaxBackups: 32,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Dictionary: Dictionary{
			WordsPath:     "words.txt",
			MaxWordLength: keypad.MaxWordLength,
		},
		Cache: Cache{
			Enabled:  true,
			Capacity: 4096,
			TTL:      10 * time.Minute,
		},
		Limiter: Limiter{
			Requests: 20,
			Per:      time.Second,
		},
	}
}
