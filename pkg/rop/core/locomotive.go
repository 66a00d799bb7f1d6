package core

import (
	"context"
	"sync"
)

// Locomotive drains inputCh through engine into outCh until the input is
// closed or ctx is done. An input already processed is always delivered, so
// outCh must be read until it is closed. An input received after ctx ended
// is handed to onCancel, when set.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) Out,
	onCancel func(ctx context.Context, unprocessed In),
	wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if onCancel != nil {
					onCancel(ctx, in)
				}
				return
			}

			outCh <- engine(ctx, in)
		}
	}
}
