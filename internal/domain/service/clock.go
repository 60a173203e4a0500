package service

import "time"

// Clock supplies the current calendar day. Filter defaults and the wastage rule read "today" from it.
type Clock interface {
	// Now returns the current instant in the service's configured time zone.
	Now() time.Time

	// Today returns the current calendar date in the configured time zone as midnight UTC.
	Today() time.Time
}
