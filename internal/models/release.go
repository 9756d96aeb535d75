package models

import "time"

// Release describes a published program version found on the release page.
type Release struct {
	Version   string
	URL       string
	Published time.Time
}
