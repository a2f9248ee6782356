package core

import (
	"context"
	"testing"
	"time"
)

func TestFixedDelayerWaits(t *testing.T) {
	delay := NewDelayer(LatencyConfig{
		Read:  10 * time.Millisecond,
		List:  20 * time.Millisecond,
		Write: 30 * time.Millisecond,
		Bulk:  40 * time.Millisecond,
	})

	tests := []struct {
		name string
		op   OpClass
		min  time.Duration
	}{
		{name: "read", op: OpRead, min: 10 * time.Millisecond},
		{name: "list", op: OpList, min: 20 * time.Millisecond},
		{name: "write", op: OpWrite, min: 30 * time.Millisecond},
		{name: "bulk", op: OpBulkWrite, min: 40 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			if err := delay.Wait(context.Background(), tt.op); err != nil {
				t.Fatalf("Wait() error = %v", err)
			}
			if elapsed := time.Since(start); elapsed < tt.min {
				t.Errorf("Wait() returned after %v; want at least %v", elapsed, tt.min)
			}
		})
	}
}

func TestFixedDelayerCtxCancel(t *testing.T) {
	delay := NewDelayer(LatencyConfig{Read: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	if err := delay.Wait(ctx, OpRead); err != context.DeadlineExceeded {
		t.Errorf("Wait() error = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestNoDelay(t *testing.T) {
	start := time.Now()
	if err := NoDelay.Wait(context.Background(), OpBulkWrite); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Millisecond {
		t.Errorf("NoDelay.Wait() took %v; want immediate return", elapsed)
	}
}
