package async

import (
	"context"
	"sync"

	"github.com/ib-77/safecall/pkg/rop"
	"github.com/ib-77/safecall/pkg/rop/core"
	"github.com/ib-77/safecall/pkg/rop/safe"
)

const defaultLines = 4

// Go delivers exactly one outcome and then closes the channel.
func Go[T any](ctx context.Context, op rop.Operation[T]) <-chan rop.Outcome[T] {
	out := make(chan rop.Outcome[T], 1)

	go func() {
		defer close(out)
		out <- safe.Call(ctx, op)
	}()

	return out
}

type job[T any] struct {
	index int
	op    rop.Operation[T]
}

type done[T any] struct {
	index   int
	outcome rop.Outcome[T]
}

// All returns one outcome per operation, in the order given. Operations not
// started before ctx ended get an Error outcome with the context's message.
func All[T any](ctx context.Context, ops ...rop.Operation[T]) []rop.Outcome[T] {
	results := make([]rop.Outcome[T], len(ops))
	if len(ops) == 0 {
		return results
	}

	jobs := make([]job[T], len(ops))
	for i, op := range ops {
		jobs[i] = job[T]{index: i, op: op}
	}

	lines := min(core.GetWorkerMaxCount(ctx, defaultLines), len(ops))

	inputCh := core.ToChanMany(ctx, jobs)
	outCh := make(chan done[T])
	wg := &sync.WaitGroup{}

	engine := func(ctx context.Context, j job[T]) done[T] {
		return done[T]{index: j.index, outcome: safe.Call(ctx, j.op)}
	}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, outCh, engine, nil, wg)
	}

	go func() {
		wg.Wait()
		close(outCh)
	}()

	finished := make([]bool, len(ops))
	for d := range outCh {
		results[d.index] = d.outcome
		finished[d.index] = true
	}

	for i := range results {
		if !finished[i] {
			results[i] = rop.Error[T](cancelMessage(ctx))
		}
	}

	return results
}

func cancelMessage(ctx context.Context) string {
	if err := ctx.Err(); err != nil {
		return err.Error()
	}
	return ""
}
