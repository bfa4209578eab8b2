package pathfinder

import (
	"context"

	"github.com/persistorai/wikipath/internal/models"
)

// breadthFirst returns a shortest trail from start to dest, or a nil trail and
// the reason the search ended without one.
func (f *Finder) breadthFirst(ctx context.Context, start, dest models.PageID) ([]models.PageID, string, error) {
	queue := []models.PageID{start}
	seen := map[models.PageID]struct{}{start: {}}
	pred := map[models.PageID]models.PageID{start: start} // start's self-loop terminates reconstruction

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		cur := queue[0]
		queue = queue[1:]

		if cur == dest {
			return reconstruct(pred, dest), "", nil
		}

		neighbors, err := f.expander.expand(ctx, cur)
		if err != nil {
			return nil, "", err
		}
		f.markExpanded()

		for _, n := range neighbors {
			if n.Skip {
				continue
			}
			if _, ok := seen[n.ID]; ok {
				continue
			}

			if f.opts.MaxVisited > 0 && len(seen) >= f.opts.MaxVisited {
				// Discovery order is BFS order, so a destination already seen
				// carries a shortest predecessor chain.
				if _, ok := seen[dest]; ok {
					return reconstruct(pred, dest), "", nil
				}
				f.log.WithField("max_visited", f.opts.MaxVisited).Info("bfs visit budget exhausted")
				return nil, models.ReasonBudgetExceeded, nil
			}

			seen[n.ID] = struct{}{}
			pred[n.ID] = cur
			queue = append(queue, n.ID)
		}
	}

	return nil, models.ReasonExhausted, nil
}

// reconstruct walks predecessor links back from dest until it reaches the
// self-looped start, then reverses the trail.
func reconstruct(pred map[models.PageID]models.PageID, dest models.PageID) []models.PageID {
	trail := []models.PageID{dest}
	for cur := dest; ; {
		p, ok := pred[cur]
		if !ok || p == cur {
			break
		}
		trail = append(trail, p)
		cur = p
	}

	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail
}
