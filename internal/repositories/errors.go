package repositories

import "errors"

// ErrNotFound is returned by every repository lookup that misses.
// Handlers map it to a 404 response.
var ErrNotFound = errors.New("record not found")
