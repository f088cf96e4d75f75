package domain

import (
	"errors"
	"time"
)

// AdvisorySeverity represents the severity of a service advisory.
type AdvisorySeverity string

const (
	AdvisorySeverityInfo       AdvisorySeverity = "INFO"
	AdvisorySeverityWarning    AdvisorySeverity = "WARNING"
	AdvisorySeverityDisruption AdvisorySeverity = "DISRUPTION"
)

var (
	ErrInvalidSeverity = errors.New("invalid advisory severity")
	ErrEmptyTitle      = errors.New("advisory title is required")
)

// Advisory represents a service-wide notice shown on the tracking pages,
// e.g. a weather delay affecting a region.
type Advisory struct {
	Title     string           `json:"title"`
	Detail    string           `json:"detail"`
	Severity  AdvisorySeverity `json:"severity"`
	Region    string           `json:"region,omitempty"`
	Duration  int              `json:"duration,omitempty"` // Duration in seconds. 0 means until manually removed.
	CreatedAt time.Time        `json:"created_at"`
}

// NewAdvisory creates a new Advisory and validates it.
func NewAdvisory(title, detail string, severity AdvisorySeverity, region string, duration int) (*Advisory, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if severity != AdvisorySeverityInfo && severity != AdvisorySeverityWarning && severity != AdvisorySeverityDisruption {
		return nil, ErrInvalidSeverity
	}

	return &Advisory{
		Title:     title,
		Detail:    detail,
		Severity:  severity,
		Region:    region,
		Duration:  duration,
		CreatedAt: time.Now(),
	}, nil
}
