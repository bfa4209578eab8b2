package pathfinder

import (
	"context"

	"github.com/persistorai/wikipath/internal/models"
)

// frame is one level of the depth-first stack. It owns its neighbor cursor
// and its entry in the on-path set, which is released when it is popped.
type frame struct {
	id       models.PageID
	depth    int
	links    []string
	next     int
	expanded bool
}

// depthFirst returns the first trail found within MaxDepth hops, trying
// neighbors in source order. The on-path set only prevents cycles within the
// current branch; a page may be revisited through a different branch.
func (f *Finder) depthFirst(ctx context.Context, start, dest models.PageID) ([]models.PageID, string, error) {
	maxDepth := f.opts.MaxDepth
	if maxDepth == 0 {
		return nil, models.ReasonDepthExhausted, nil
	}

	stack := []*frame{{id: start}}
	onPath := map[models.PageID]struct{}{start: {}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		top := stack[len(stack)-1]

		if !top.expanded {
			links, err := f.expander.links(ctx, top.id)
			if err != nil {
				return nil, "", err
			}
			top.links = links
			top.expanded = true
			f.markExpanded()
		}

		if top.next >= len(top.links) {
			delete(onPath, top.id)
			stack = stack[:len(stack)-1]
			continue
		}

		title := top.links[top.next]
		top.next++

		n := f.expander.resolve(ctx, title)
		if n.Skip {
			continue
		}
		if _, ok := onPath[n.ID]; ok {
			continue
		}

		if n.ID == dest {
			trail := make([]models.PageID, 0, len(stack)+1)
			for _, fr := range stack {
				trail = append(trail, fr.id)
			}
			return append(trail, n.ID), "", nil
		}

		// A child at the depth budget cannot reach dest in the remaining hops.
		if top.depth+1 >= maxDepth {
			continue
		}

		onPath[n.ID] = struct{}{}
		stack = append(stack, &frame{id: n.ID, depth: top.depth + 1})
	}

	return nil, models.ReasonDepthExhausted, nil
}
