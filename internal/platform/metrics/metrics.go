// Package metrics keeps cheap in-process request counters for the
// admin endpoint. Counters are monotonic for the life of the process;
// there is no external metrics backend.
package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	requests     atomic.Uint64
	clientErrors atomic.Uint64
	serverErrors atomic.Uint64
	rateLimited  atomic.Uint64
	durationMs   atomic.Uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.requests.Add(1)
	switch {
	case status == 429:
		c.rateLimited.Add(1)
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.durationMs.Add(uint64(duration.Milliseconds()))
}

type Snapshot struct {
	Requests        uint64  `json:"requestsTotal"`
	ClientErrors    uint64  `json:"clientErrorsTotal"`
	ServerErrors    uint64  `json:"serverErrorsTotal"`
	RateLimited     uint64  `json:"rateLimitedTotal"`
	TotalDurationMs uint64  `json:"totalDurationMs"`
	AvgDurationMs   float64 `json:"avgDurationMs"`
}

func (c *Collector) Snapshot() Snapshot {
	snap := Snapshot{
		Requests:        c.requests.Load(),
		ClientErrors:    c.clientErrors.Load(),
		ServerErrors:    c.serverErrors.Load(),
		RateLimited:     c.rateLimited.Load(),
		TotalDurationMs: c.durationMs.Load(),
	}
	if snap.Requests > 0 {
		snap.AvgDurationMs = float64(snap.TotalDurationMs) / float64(snap.Requests)
	}
	return snap
}
