package api

import (
	"context"

	"github.com/persistorai/wikipath/internal/models"
)

// PathFinder runs one path search. It is satisfied by *service.PathService.
type PathFinder interface {
	FindPath(ctx context.Context, req models.PathRequest) (*models.PathResult, error)
}
