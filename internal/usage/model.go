package usage

import "time"

// Usage is a user's AI call consumption for the current daily window.
type Usage struct {
	Limit    int       `json:"limit"`
	Used     int       `json:"used"`
	ResetsAt time.Time `json:"resetsAt"`
}

const window = 24 * time.Hour
