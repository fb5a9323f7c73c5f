package registry

import (
	"context"

	"github.com/alexanderramin/steward/internal/domain"
)

// Registry issues plans and hands each one out at most once.
//
// Consume must be a single atomic check-and-remove: of any number of
// concurrent calls for the same plan id, at most one succeeds.
type Registry interface {
	Issue(ctx context.Context, intent domain.Intent) (domain.Plan, error)
	Consume(ctx context.Context, planID, token string) (domain.Plan, error)
}
