package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/backmassage/webpix/internal/codec"
	"github.com/backmassage/webpix/internal/config"
	"github.com/backmassage/webpix/internal/convert"
	"github.com/backmassage/webpix/internal/naming"
)

// Item is one input file and its position in the batch.
type Item struct {
	Source string
	Index  int
}

// Items numbers files in input order.
func Items(files []string) []Item {
	items := make([]Item, len(files))
	for i, f := range files {
		items[i] = Item{Source: f, Index: i}
	}
	return items
}

// Workers returns the pool size for n items: requested when positive,
// otherwise one per CPU, never more than n and never less than one.
func Workers(requested, n int) int {
	w := requested
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Runner converts batches with a fixed converter and token source.
type Runner struct {
	conv  *convert.Converter
	token naming.TokenFunc
}

// NewRunner returns a runner. A nil token uses naming.NewToken.
func NewRunner(conv *convert.Converter, token naming.TokenFunc) *Runner {
	if token == nil {
		token = naming.NewToken
	}
	return &Runner{conv: conv, token: token}
}

// Run converts req with the default WebP converter and random names.
func Run(ctx context.Context, req config.Request) []convert.Outcome {
	return NewRunner(convert.New(), nil).Run(ctx, req)
}

// Run converts every file in req and returns one outcome per file, indexed
// like req.Files. It returns once every item has finished. ctx is checked
// only before an item starts: items already running are never interrupted,
// and items not started when ctx is done fail with ctx.Err().
func (r *Runner) Run(ctx context.Context, req config.Request) []convert.Outcome {
	items := Items(req.Files)
	outcomes := make([]convert.Outcome, len(items))
	if len(items) == 0 {
		return outcomes
	}

	guard := naming.NewGuard(req.Files)
	opts := convert.Options{
		KeepOriginal: req.KeepOriginal,
		Quality:      req.Quality,
		Force:        req.Force,
	}

	work := make(chan Item)
	var wg sync.WaitGroup
	for i := 0; i < Workers(req.Workers, len(items)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for it := range work {
				// Each goroutine writes only its item's slot.
				outcomes[it.Index] = r.process(ctx, req, it, guard, opts)
			}
		}()
	}
	for _, it := range items {
		work <- it
	}
	close(work)
	wg.Wait()
	return outcomes
}

// process names, claims and converts one item.
func (r *Runner) process(ctx context.Context, req config.Request, it Item, guard *naming.Guard, opts convert.Options) convert.Outcome {
	if err := ctx.Err(); err != nil {
		return convert.Outcome{Source: it.Source, Err: err}
	}

	output := naming.DeriveOutputPath(it.Source, req.OutputBase, it.Index, len(req.Files), codec.Extension, r.token)
	if err := guard.Claim(it.Source, output); err != nil {
		return convert.Outcome{
			Source: it.Source,
			Err:    &convert.StageError{Stage: convert.StageWrite, Path: output, Err: err},
		}
	}

	if req.DryRun {
		return convert.Plan(it.Source, output, opts)
	}
	return r.conv.Convert(it.Source, output, opts)
}
