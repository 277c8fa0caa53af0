package domain

import "time"

// FreeWindow - окно, в которое все выбранные участники свободны
type FreeWindow struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}
