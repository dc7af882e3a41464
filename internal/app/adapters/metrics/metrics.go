package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DictionaryWords - слов в загруженном словаре.
	DictionaryWords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "t9dict_words",
		Help: "Number of words stored in the loaded dictionary",
	})

	// TrieNodes - узлов в дереве, включая цепочки коллизий.
	TrieNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "t9dict_trie_nodes",
		Help: "Number of allocated trie nodes including collision chain nodes",
	})

	// RejectedWords - строки словаря, которые не удалось вставить.
	RejectedWords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "t9dict_rejected_words_total",
			Help: "Word source lines rejected during build, by reason",
		},
		[]string{"reason"},
	)

	// DictionaryReloads - перезагрузки словаря.
	DictionaryReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "t9dict_reloads_total",
			Help: "Dictionary builds by outcome",
		},
		[]string{"result"},
	)

	// Lookups - поиски по результату: found, absent, invalid.
	Lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "t9dict_lookups_total",
			Help: "Key sequence lookups by result",
		},
		[]string{"result"},
	)

	// CacheRequests - обращения к кэшу поиска.
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "t9dict_cache_requests_total",
			Help: "Lookup cache requests by outcome",
		},
		[]string{"outcome"},
	)

	// LookupTime - время поиска.
	LookupTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "t9dict_lookup_milliseconds",
			Help:    "Time to resolve a key sequence",
			Buckets: prometheus.ExponentialBuckets(0.00005, 1.5, 25),
		},
	)

	// KeypadSessions - открытые websocket-сессии.
	KeypadSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "t9dict_keypad_sessions",
		Help: "Open websocket keypad sessions",
	})
)
