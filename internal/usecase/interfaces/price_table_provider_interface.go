package interfaces

import (
	"context"
	"granite_estimator/internal/domain/entities"
)

// IPriceTableProvider returns a complete price list or an error. It never
// returns a partial list.
type IPriceTableProvider interface {
	Load(ctx context.Context) (*entities.PriceList, error)
}
