package handler

import "time"

var (
	WriteError        = writeError
	WriteServiceError = writeServiceError
)

// SetNow overrides the handler clock for tests.
func (h *ReviewHandler) SetNow(now func() time.Time) {
	h.now = now
}
