package models

import "time"

// Now returns the current time in UTC. Seed data and envelopes stamp with it.
func Now() time.Time {
	return time.Now().UTC()
}
