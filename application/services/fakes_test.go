package services

import (
	"context"
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/panjf2000/ants/v2"
	"github.com/samber/mo"
	"sync/atomic"
	"testing"
)

type fakeChatCompletion struct {
	calls   atomic.Int32
	lastReq outbound.ChatCompletionRequest
	text    string
	err     error
	panics  bool
}

func (f *fakeChatCompletion) Complete(_ context.Context, req outbound.ChatCompletionRequest) (string, error) {
	f.calls.Add(1)
	f.lastReq = req
	if f.panics {
		panic("boom")
	}
	return f.text, f.err
}

type fakeSpeechGenerator struct {
	calls   atomic.Int32
	lastReq outbound.GenerateSpeechRequest
	payload domain.SpeechPayload
	err     error
	block   bool
}

func (f *fakeSpeechGenerator) Generate(ctx context.Context, req outbound.GenerateSpeechRequest) mo.Result[domain.SpeechPayload] {
	f.calls.Add(1)
	f.lastReq = req
	if f.block {
		<-ctx.Done()
		return mo.Err[domain.SpeechPayload](&domain.TransportFailureError{Cause: ctx.Err()})
	}
	if f.err != nil {
		return mo.Err[domain.SpeechPayload](f.err)
	}
	return mo.Ok(f.payload)
}

func newTestPool(t *testing.T) *ants.Pool {
	t.Helper()
	pool, err := ants.NewPool(4)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	t.Cleanup(pool.Release)
	return pool
}

// newSaturatedPool returns a non-blocking pool of one worker that is already busy.
func newSaturatedPool(t *testing.T) *ants.Pool {
	t.Helper()
	pool, err := ants.NewPool(1, ants.WithNonblocking(true))
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	started := make(chan struct{})
	release := make(chan struct{})
	if err := pool.Submit(func() {
		close(started)
		<-release
	}); err != nil {
		t.Fatal("Failed to occupy worker pool:", err)
	}
	<-started
	t.Cleanup(func() {
		close(release)
		pool.Release()
	})
	return pool
}
