package session

import "time"

// Defaults used when the config leaves a field unset.
const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// Log messages
const (
	LogMsgSessionOpened  = "Packing session %s opened for %q"
	LogMsgSessionEvicted = "Packing session %s evicted"
)
