package config

import "time"

type Config struct {
	App        App        `json:"app"`
	Log        Log        `json:"log"`
	Dictionary Dictionary `json:"dictionary"`
	Cache      Cache      `json:"cache"`
	Limiter    Limiter    `json:"limiter"`
}

type App struct {
	LogLevel   string `json:"log_level"`
	GinMode    string `json:"gin_mode"`
	ListenAddr string `json:"listen_addr"`
	AuthToken  string `json:"auth_token"` // pprof, metrics, reload
}

type Log struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
	Compress   bool   `json:"compress"`
}

type Dictionary struct {
	WordsPath     string `json:"words_path"`
	MaxWordLength int    `json:"max_word_length"` // вместе с терминатором
}

type Cache struct {
	Enabled  bool          `json:"enabled"`
	Capacity int           `json:"capacity"`
	TTL      time.Duration `json:"ttl"`
}

type Limiter struct {
	Requests int           `json:"requests"` // сколько запросов
	Per      time.Duration `json:"per"`      // за какое время
}
