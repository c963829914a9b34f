package listing

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID string
}

// threePages serves 3 pages of 100 records, ids r-<page>-<index>
func threePages(calls *[]int) PageFetcher[record] {
	return func(ctx context.Context, page, limit int) ([]record, domain.PageMetadata, error) {
		*calls = append(*calls, page)

		items := make([]record, 0, limit)
		for i := 0; i < limit; i++ {
			items = append(items, record{ID: fmt.Sprintf("r-%d-%d", page, i)})
		}

		return items, domain.PageMetadata{
			Total:      300,
			Page:       page,
			Limit:      limit,
			TotalPages: 3,
			HasNext:    page < 3,
		}, nil
	}
}

func TestFindByScan(t *testing.T) {
	t.Run("match on page 3 costs exactly 3 requests", func(t *testing.T) {
		var calls []int

		found, err := FindByScan(context.Background(), threePages(&calls), ScanLimit, func(r record) bool {
			return r.ID == "r-3-42"
		})

		require.NoError(t, err)
		assert.Equal(t, "r-3-42", found.ID)
		assert.Equal(t, []int{1, 2, 3}, calls)
	})

	t.Run("absent id costs 3 requests then not found", func(t *testing.T) {
		var calls []int

		_, err := FindByScan(context.Background(), threePages(&calls), ScanLimit, func(r record) bool {
			return r.ID == "missing"
		})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, []int{1, 2, 3}, calls)
	})

	t.Run("match on page 1 stops immediately", func(t *testing.T) {
		var calls []int

		_, err := FindByScan(context.Background(), threePages(&calls), ScanLimit, func(r record) bool {
			return r.ID == "r-1-0"
		})

		require.NoError(t, err)
		assert.Equal(t, []int{1}, calls)
	})

	t.Run("fetch error aborts the scan", func(t *testing.T) {
		calls := 0
		fetch := func(ctx context.Context, page, limit int) ([]record, domain.PageMetadata, error) {
			calls++
			if page == 2 {
				return nil, domain.PageMetadata{}, errors.New("upstream down")
			}
			return []record{{ID: "a"}}, domain.PageMetadata{HasNext: true}, nil
		}

		_, err := FindByScan(context.Background(), fetch, ScanLimit, func(r record) bool { return false })

		assert.EqualError(t, err, "upstream down")
		assert.Equal(t, 2, calls)
	})

	t.Run("has_next stuck true stops at total_pages", func(t *testing.T) {
		calls := 0
		fetch := func(ctx context.Context, page, limit int) ([]record, domain.PageMetadata, error) {
			calls++
			return []record{{ID: fmt.Sprintf("r-%d", page)}}, domain.PageMetadata{Page: page, TotalPages: 2, HasNext: true}, nil
		}

		_, err := FindByScan(context.Background(), fetch, ScanLimit, func(r record) bool { return false })

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 2, calls)
	})

	t.Run("empty page with has_next ends the scan", func(t *testing.T) {
		calls := 0
		fetch := func(ctx context.Context, page, limit int) ([]record, domain.PageMetadata, error) {
			calls++
			if page == 1 {
				return []record{{ID: "a"}}, domain.PageMetadata{HasNext: true}, nil
			}
			return nil, domain.PageMetadata{HasNext: true}, nil
		}

		_, err := FindByScan(context.Background(), fetch, ScanLimit, func(r record) bool { return false })

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, 2, calls)
	})

	t.Run("cancelled context stops before fetching", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls []int
		_, err := FindByScan(ctx, threePages(&calls), ScanLimit, func(r record) bool { return false })

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, calls)
	})
}
