package upstream

import (
	"encoding/json"
	"log/slog"
)

// decodeElems unmarshals each raw element into T. A malformed element is
// logged and skipped — one bad record must not sink the whole list.
// Always returns a non-nil slice so callers can range over it safely.
func decodeElems[T any](elems []json.RawMessage, resource string, log *slog.Logger) []T {
	out := make([]T, 0, len(elems))
	for _, raw := range elems {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			log.Warn("skipping malformed record", "resource", resource, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}
