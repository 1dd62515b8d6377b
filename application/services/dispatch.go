package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/panjf2000/ants/v2"
	"github.com/samber/mo"
)

// runOnPool runs call on the worker pool and waits for its result or for ctx to end.
// The pool must be non-blocking: a full pool fails fast with a service busy error
// instead of parking the caller outside its own deadline. A panic inside call is
// reported as an error.
func runOnPool[T any](ctx context.Context, workerPool outbound.TaskDispatcher, call func(ctx context.Context) mo.Result[T]) mo.Result[T] {
	if err := ctx.Err(); err != nil {
		return mo.Err[T](err)
	}

	resultCh := make(chan mo.Result[T], 1)

	err := workerPool.Submit(func() {
		defer func() {
			if p := recover(); p != nil {
				resultCh <- mo.Err[T](fmt.Errorf("panic during upstream call: %v", p))
			}
		}()
		resultCh <- call(ctx)
	})
	if errors.Is(err, ants.ErrPoolOverload) {
		return mo.Err[T](domain.NewServiceBusyError(err))
	}
	if err != nil {
		return mo.Err[T](fmt.Errorf("failed to submit upstream call: %w", err))
	}

	select {
	case res := <-resultCh:
		return res
	case <-ctx.Done():
		return mo.Err[T](ctx.Err())
	}
}
