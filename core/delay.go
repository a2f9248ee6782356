package core

import (
	"context"
	"time"
)

// OpClass classifies store operations for latency simulation purposes.
type OpClass int

const (
	OpRead OpClass = iota
	OpList
	OpWrite
	OpBulkWrite
)

type (
	// Delayer blocks the calling operation for its class-specific simulated
	// latency. Injected into services so tests can run with NoDelay while
	// production callers keep the UX-motivating delay.
	Delayer interface {
		Wait(ctx context.Context, op OpClass) error
	}

	fixedDelayer struct {
		conf LatencyConfig
	}

	noDelayer struct{}
)

// NoDelay completes every wait immediately.
var NoDelay Delayer = noDelayer{}

func NewDelayer(conf LatencyConfig) Delayer {
	return &fixedDelayer{conf: conf}
}

func (d *fixedDelayer) duration(op OpClass) time.Duration {
	switch op {
	case OpList:
		return d.conf.List
	case OpWrite:
		return d.conf.Write
	case OpBulkWrite:
		return d.conf.Bulk
	default:
		return d.conf.Read
	}
}

func (d *fixedDelayer) Wait(ctx context.Context, op OpClass) error {
	dur := d.duration(op)
	if dur <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(dur)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (noDelayer) Wait(ctx context.Context, _ OpClass) error {
	return ctx.Err()
}
