package listing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/internal/domain"
)

var ErrNotFound = errors.New("listing: record not found")

// PageFetcher loads one page of a list endpoint
type PageFetcher[T any] func(ctx context.Context, page, limit int) ([]T, domain.PageMetadata, error)

// FindByScan walks a list endpoint page by page until match succeeds or
// the listing ends. A match on page N costs exactly N requests.
// The listing ends when has_next is false, when total_pages is reached, or
// when a page comes back empty.
func FindByScan[T any](ctx context.Context, fetch PageFetcher[T], limit int, match func(T) bool) (T, error) {
	var zero T

	if limit <= 0 {
		limit = ScanLimit
	}

	for page := DefaultPage; ; page++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		items, meta, err := fetch(ctx, page, limit)
		if err != nil {
			return zero, err
		}

		for _, item := range items {
			if match(item) {
				return item, nil
			}
		}

		if lastPage(page, len(items), meta) {
			return zero, ErrNotFound
		}
	}
}

func lastPage(page, size int, meta domain.PageMetadata) bool {
	switch {
	case !meta.HasNext:
		return true
	case meta.TotalPages > 0 && page >= meta.TotalPages:
		return true
	default:
		return size == 0
	}
}
