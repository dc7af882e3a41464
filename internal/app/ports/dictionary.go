package ports

import (
	"io"
	"time"
)

type DictionaryStats struct {
	Source   string    `json:"source"`
	Words    int       `json:"words"`
	Nodes    int       `json:"nodes"`
	Rejected int       `json:"rejected"`
	LoadedAt time.Time `json:"loaded_at"`
}

type DictionaryPort interface {
	Lookup(keys string) ([]string, error)
	Encode(word string) (string, error)
	Reload() error
	Stats() DictionaryStats
	Dump(w io.Writer) error
	Close()
}
