package handlers

import (
	"bytes"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
	"net/http"
	"runtime"
	"t9dict/internal/app/infrastructure/keypad"
	"t9dict/internal/app/ports"
	"t9dict/pkg/logger"
	"time"
)

type Handlers struct {
	log  logger.Logger
	dict ports.DictionaryPort
}

func New(log logger.Logger, dict ports.DictionaryPort) *Handlers {
	return &Handlers{
		log:  log,
		dict: dict,
	}
}

var startApp = time.Now()

type lookupResponse struct {
	Keys  string   `json:"keys"`
	Words []string `json:"words"`
}

func (h *Handlers) LookupHandler(c *gin.Context) {
	keys := c.Param("keys")

	words, err := h.dict.Lookup(keys)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusOK
	if len(words) == 0 {
		status = http.StatusNotFound
	}
	c.JSON(status, lookupResponse{Keys: keys, Words: words})
}

func (h *Handlers) EncodeHandler(c *gin.Context) {
	word := c.Param("word")

	keys, err := h.dict.Encode(word)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": word, "keys": keys})
}

func (h *Handlers) StatusHandler(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	var cpuLoad float64
	if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
		cpuLoad = percent[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"dictionary": h.dict.Stats(),
		"uptime":     time.Since(startApp).Truncate(time.Second).String(),
		"cpu":        cpuLoad,
		"memory_mb":  m.Sys / 1024 / 1024,
	})
}

func (h *Handlers) DumpHandler(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.dict.Dump(&buf); err != nil {
		h.log.Error("Failed to dump trie", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (h *Handlers) ReloadHandler(c *gin.Context) {
	if err := h.dict.Reload(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, keypad.ErrUnreadableSource) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error(), "dictionary": h.dict.Stats()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dictionary": h.dict.Stats()})
}
