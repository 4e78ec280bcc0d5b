package render

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/nighttype/internal/archetype"
	"github.com/dshills/nighttype/internal/quiz"
)

// RenderAll renders a card without score bars for every code in reg,
// running at most limit renders at once (no limit when limit <= 0). The
// first failure cancels the remaining renders.
func (r *Renderer) RenderAll(ctx context.Context, reg *archetype.Registry, limit int) (map[quiz.Code][]byte, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var mu sync.Mutex
	out := make(map[quiz.Code][]byte, reg.Len())
	for _, code := range reg.AllCodes() {
		p := reg.Lookup(code)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := r.Render(code, p, nil)
			if err != nil {
				return fmt.Errorf("%s: %w", code, err)
			}
			mu.Lock()
			out[code] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render.RenderAll: %w", err)
	}
	return out, nil
}
