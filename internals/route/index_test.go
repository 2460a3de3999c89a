package routes

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shiftlink_backend/internals/logger"
)

type countingPurger struct{ calls atomic.Int32 }

func (p *countingPurger) PurgeRevoked(context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, nil
}

func TestPurgeRevokedTokens_StopsOnCancel(t *testing.T) {
	p := &countingPurger{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		purgeRevokedTokens(ctx, p, logger.NewNoOpLogger(), 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purge loop did not stop")
	}
}

func TestPurgeRevokedTokens_DisabledInterval(t *testing.T) {
	p := &countingPurger{}
	purgeRevokedTokens(context.Background(), p, logger.NewNoOpLogger(), 0)
	assert.Zero(t, p.calls.Load())
}
