package catalog

import (
	"context"

	"github.com/ytget/storefront/internal/model"
)

// Fetcher defines the interface for the catalog read.
type Fetcher interface {
	// FetchItems performs one read and returns the full item list.
	FetchItems(ctx context.Context) ([]model.Item, error)
}
