package testing

import (
	"context"
	"log/slog"
	"sync"
)

// LogRecorder is a slog.Handler that keeps every record it handles, so
// tests can assert on what a Table logged
type LogRecorder struct {
	records  []slog.Record
	minLevel slog.Leveler
	mu       sync.Mutex
}

func NewLogRecorder() *LogRecorder {
	return &LogRecorder{
		minLevel: slog.LevelDebug,
	}
}

// Logger returns a Logger that writes to this recorder
func (h *LogRecorder) Logger() *slog.Logger {
	return slog.New(h)
}

// Messages returns the messages of the recorded entries, in order
func (h *LogRecorder) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]string, len(h.records))
	for i, r := range h.records {
		res[i] = r.Message
	}
	return res
}

// Attr returns the value of the named attribute of the last record that
// carries the provided message
func (h *LogRecorder) Attr(msg, key string) (slog.Value, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.records) - 1; i >= 0; i-- {
		r := h.records[i]
		if r.Message != msg {
			continue
		}
		var res slog.Value
		var found bool
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				res, found = a.Value, true
				return false
			}
			return true
		})
		return res, found
	}
	return slog.Value{}, false
}

func (h *LogRecorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel.Level()
}

func (h *LogRecorder) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *LogRecorder) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *LogRecorder) WithGroup(_ string) slog.Handler {
	return h
}
