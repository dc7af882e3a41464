package dictionary

import (
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"io"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"t9dict/internal/app/adapters/metrics"
	"t9dict/internal/app/infrastructure/config"
	"t9dict/internal/app/infrastructure/keypad"
	"t9dict/internal/app/infrastructure/storage"
	"t9dict/internal/app/ports"
	"t9dict/pkg/logger"
	"time"
)

var (
	_ ports.DictionaryPort      = (*Dictionary)(nil)
	_ ports.KeypadTriePort      = (*keypad.Trie)(nil)
	_ ports.KeypadNodePort      = (*keypad.Node)(nil)
	_ ports.CachePort[[]string] = (*storage.Cache[[]string])(nil)
)

// Dictionary serves lookups from a keypad trie built from the configured
// word file. The trie is never mutated after it is published; Reload builds
// a new one and swaps it in.
type Dictionary struct {
	log     logger.Logger
	manager *config.Manager

	current  atomic.Pointer[generation]
	reloadMu sync.Mutex
}

// generation is one published trie together with the lookups memoized
// against it. A cache never outlives its trie.
type generation struct {
	trie  *keypad.Trie
	cache ports.CachePort[[]string]
	stats ports.DictionaryStats
}

func New(log logger.Logger, manager *config.Manager) *Dictionary {
	d := &Dictionary{
		log:     log,
		manager: manager,
	}

	d.current.Store(d.newGeneration(keypad.New(), ports.DictionaryStats{Nodes: 1}))
	return d
}

func (d *Dictionary) newGeneration(t *keypad.Trie, stats ports.DictionaryStats) *generation {
	g := &generation{trie: t, stats: stats}
	if cfg := d.manager.Get().Cache; cfg.Enabled {
		g.cache = storage.NewCache[[]string](cfg.Capacity, cfg.TTL)
	}
	return g
}

// Reload rebuilds the trie from dictionary.words_path. If the file cannot be
// read, the words read so far replace an empty dictionary but never a
// previously loaded one.
func (d *Dictionary) Reload() error {
	d.reloadMu.Lock()
	defer d.reloadMu.Unlock()

	path := d.manager.Get().Dictionary.WordsPath
	start := time.Now()

	rejected := 0
	t, err := keypad.BuildFile(path, keypad.WithRejectHandler(func(line int, word string, err error) {
		rejected++
		metrics.RejectedWords.With(prometheus.Labels{"reason": rejectReason(err)}).Inc()
		d.log.Debug("Word rejected", "line", line, "word", word, "reason", err.Error())
	}))

	if err != nil && d.current.Load().trie.Len() > 0 {
		metrics.DictionaryReloads.With(prometheus.Labels{"result": "failed"}).Inc()
		d.log.Error("Dictionary reload failed, keeping previous words", err, "path", path)
		return fmt.Errorf("reload %s: %w", path, err)
	}

	d.current.Store(d.newGeneration(t, ports.DictionaryStats{
		Source:   path,
		Words:    t.Len(),
		Nodes:    t.Nodes(),
		Rejected: rejected,
		LoadedAt: time.Now(),
	}))

	metrics.DictionaryWords.Set(float64(t.Len()))
	metrics.TrieNodes.Set(float64(t.Nodes()))

	if err != nil {
		metrics.DictionaryReloads.With(prometheus.Labels{"result": "failed"}).Inc()
		d.log.Error("Dictionary source unreadable", err, "path", path, "words", t.Len())
		return fmt.Errorf("load %s: %w", path, err)
	}

	metrics.DictionaryReloads.With(prometheus.Labels{"result": "ok"}).Inc()
	d.log.Info("Dictionary loaded", "path", path, "words", t.Len(), "nodes", t.Nodes(), "rejected", rejected, "took", time.Since(start))
	return nil
}

// Lookup resolves a key sequence such as "422" or "422#" into its words in
// insertion order. Anything after the first '#' is ignored. An unknown
// sequence yields an empty result, a malformed one ErrInvalidKeySequence.
func (d *Dictionary) Lookup(keys string) ([]string, error) {
	start := time.Now()
	defer func() {
		metrics.LookupTime.Observe(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	digits, err := normalizeKeys(keys)
	if err != nil {
		metrics.Lookups.With(prometheus.Labels{"result": "invalid"}).Inc()
		return nil, err
	}

	g := d.current.Load()
	if g.cache != nil {
		if words, ok := g.cache.Get(digits); ok {
			metrics.CacheRequests.With(prometheus.Labels{"outcome": "hit"}).Inc()
			countLookup(words)
			return slices.Clone(words), nil
		}
		metrics.CacheRequests.With(prometheus.Labels{"outcome": "miss"}).Inc()
	}

	words := g.trie.Search(digits + string(keypad.Sentinel)).Words()
	if words == nil {
		words = []string{}
	}
	if g.cache != nil {
		g.cache.Set(digits, slices.Clone(words))
	}

	countLookup(words)
	d.log.Trace("Lookup", "keys", digits, "words", len(words))
	return words, nil
}

func (d *Dictionary) Encode(word string) (string, error) {
	return keypad.Encode(strings.ToLower(strings.TrimSpace(word)))
}

func (d *Dictionary) Stats() ports.DictionaryStats {
	return d.current.Load().stats
}

func (d *Dictionary) Dump(w io.Writer) error {
	return d.current.Load().trie.Dump(w)
}

// Close releases the current trie. No lookups may run during or after it.
func (d *Dictionary) Close() {
	g := d.current.Swap(d.newGeneration(keypad.New(), ports.DictionaryStats{Nodes: 1}))
	g.trie.Clear()
	if g.cache != nil {
		g.cache.ClearAll()
	}
}

func normalizeKeys(keys string) (string, error) {
	keys = strings.TrimSpace(keys)
	if i := strings.IndexByte(keys, keypad.Sentinel); i >= 0 {
		keys = keys[:i]
	}
	if keys == "" {
		return "", fmt.Errorf("%w: empty", keypad.ErrInvalidKeySequence)
	}
	for i := 0; i < len(keys); i++ {
		if _, ok := keypad.DigitGroup(keys[i]); !ok {
			return "", fmt.Errorf("%w: %q at position %d", keypad.ErrInvalidKeySequence, keys[i], i)
		}
	}
	return keys, nil
}

func countLookup(words []string) {
	result := "found"
	if len(words) == 0 {
		result = "absent"
	}
	metrics.Lookups.With(prometheus.Labels{"result": result}).Inc()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, keypad.ErrInvalidWordCharacter):
		return "invalid_char"
	case errors.Is(err, keypad.ErrWordTooLong):
		return "too_long"
	case errors.Is(err, keypad.ErrEmptyWord):
		return "empty"
	}
	return "other"
}
