package listing

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFetcher struct {
	mu      sync.Mutex
	queries []Query
}

func (f *recordingFetcher) fetch(ctx context.Context, q Query) (*Page[string], error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	return &Page[string]{
		Items: []string{"page-" + strconv.Itoa(q.Page) + "-" + q.Search},
		Metadata: domain.PageMetadata{
			Page:        q.Page,
			HasNext:     q.Page < 3,
			HasPrevious: q.Page > 1,
		},
	}, nil
}

func (f *recordingFetcher) calls() []Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Query(nil), f.queries...)
}

func TestController_Load(t *testing.T) {
	f := &recordingFetcher{}
	c := NewController(context.Background(), f.fetch, Query{Page: 0, Limit: 10})

	state := c.Load()

	require.NoError(t, state.Err)
	assert.False(t, state.Loading)
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, []string{"page-1-"}, state.Items)
	assert.Len(t, f.calls(), 1)
}

func TestController_Paging(t *testing.T) {
	f := &recordingFetcher{}
	c := NewController(context.Background(), f.fetch, Query{Limit: 10})
	defer c.Close()

	c.Mount()
	c.Wait()

	c.PreviousPage()
	c.Wait()
	assert.Equal(t, 1, c.State().Page, "previous never goes below 1")

	c.NextPage()
	c.Wait()
	c.NextPage()
	c.Wait()
	assert.Equal(t, 3, c.State().Page)

	c.NextPage()
	c.Wait()
	assert.Equal(t, 3, c.State().Page, "next is a no-op without has_next")

	c.SetPage(-4)
	c.Wait()
	assert.Equal(t, 1, c.State().Page)
}

func TestController_SetSearch(t *testing.T) {
	f := &recordingFetcher{}
	delay := 30 * time.Millisecond
	c := NewController(context.Background(), f.fetch, Query{Limit: 10, SearchParam: "query"}, WithDebounce[string](delay))
	defer c.Close()

	c.SetPage(3)
	c.Wait()
	require.Len(t, f.calls(), 1)

	for _, text := range []string{"a", "ac", "acm", "acme"} {
		c.SetSearch(text)
		time.Sleep(delay / 3)
	}

	assert.Len(t, f.calls(), 1, "no request while typing")

	c.Wait()

	calls := f.calls()
	require.Len(t, calls, 2, "exactly one request after the last keystroke")
	assert.Equal(t, "acme", calls[1].Search)
	assert.Equal(t, 1, calls[1].Page)
	assert.Equal(t, "acme", calls[1].Values().Get("query"))

	state := c.State()
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, []string{"page-1-acme"}, state.Items)
}

func TestController_DiscardsSupersededResponse(t *testing.T) {
	release := make(chan struct{})
	var commits []State[string]
	var mu sync.Mutex

	fetch := func(ctx context.Context, q Query) (*Page[string], error) {
		if q.Page == 1 {
			<-release
		}
		return &Page[string]{Items: []string{"page-" + strconv.Itoa(q.Page)}}, nil
	}

	c := NewController(context.Background(), fetch, Query{}, WithOnChange(func(s State[string]) {
		mu.Lock()
		commits = append(commits, s)
		mu.Unlock()
	}))

	c.Mount()
	c.SetPage(2)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(commits) == 1
	}, time.Second, 5*time.Millisecond)

	close(release)
	c.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, commits, 1, "stale page 1 response is not committed")
	assert.Equal(t, []string{"page-2"}, c.State().Items)
}
