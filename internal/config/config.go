// Package config holds the simulation's runtime configuration.
package config

import (
	"errors"
	"fmt"
)

const (
	DefaultJobs       = 12
	DefaultMaxRetries = 2
	DefaultMeanMs     = 300
	DefaultStddevMs   = 100
	DefaultDBPath     = "dispatcher.db"
)

var (
	// ErrNegativeJobs is returned when the job count is negative.
	ErrNegativeJobs = errors.New("config: job count must be >= 0")

	// ErrNegativeRetries is returned when the retry cap is negative.
	ErrNegativeRetries = errors.New("config: max retries must be >= 0")
)

// Config configures one simulation run.
//
// All zero values are replaced with defaults in FillDefaults; Seed is
// the exception, where zero means "derive from the current time".
type Config struct {
	// Jobs is the number of jobs seeded into the run. Must be >= 0.
	Jobs int

	// MaxRetries caps retries per job. Must be >= 0.
	MaxRetries int

	// MeanMs and StddevMs parameterize the service-time distribution,
	// in milliseconds. Both must be positive.
	MeanMs   int
	StddevMs int

	// DBPath is the SQLite file the recorder writes to.
	DBPath string

	// Seed seeds the random process model. Zero selects a
	// time-derived seed; any other value makes the run reproducible.
	Seed int64
}

// FillDefaults replaces unset fields with defaults. Jobs and
// MaxRetries are left alone: zero is a meaningful value for both (an
// empty run, no retries) and their defaults belong to the CLI flags.
func (c *Config) FillDefaults() {
	if c.MeanMs == 0 {
		c.MeanMs = DefaultMeanMs
	}
	if c.StddevMs == 0 {
		c.StddevMs = DefaultStddevMs
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
}

// Validate rejects configurations no run may start with. It must be
// called before any job is created.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return ErrNegativeJobs
	}
	if c.MaxRetries < 0 {
		return ErrNegativeRetries
	}
	if c.MeanMs <= 0 {
		return fmt.Errorf("config: mean service time must be positive, got %d", c.MeanMs)
	}
	if c.StddevMs <= 0 {
		return fmt.Errorf("config: service time stddev must be positive, got %d", c.StddevMs)
	}
	return nil
}
