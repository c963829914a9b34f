package listing

import (
	"context"
	"sync"
	"time"

	"github.com/pointnow/admin-bff/internal/domain"
	"github.com/pointnow/admin-bff/pkg/log"
)

// Page is one fetched page of a list
type Page[T any] struct {
	Items    []T
	Metadata domain.PageMetadata
}

type Fetcher[T any] func(ctx context.Context, q Query) (*Page[T], error)

// State is a snapshot of a list view
type State[T any] struct {
	Loading  bool
	Err      error
	Items    []T
	Metadata domain.PageMetadata
	Page     int
	Search   string
}

func (s State[T]) Pager() Pager {
	return NewPager(s.Metadata)
}

// Controller is the fetch state machine of a list view. Page changes fetch at
// once; search changes are debounced and reset the page to 1. Results of
// superseded requests are discarded.
type Controller[T any] struct {
	mu        sync.Mutex
	ctx       context.Context
	fetch     Fetcher[T]
	query     Query
	state     State[T]
	gen       Generation
	debouncer *Debouncer
	inflight  sync.WaitGroup
	onChange  func(State[T])
}

type ControllerOption[T any] func(*Controller[T])

func WithDebounce[T any](delay time.Duration) ControllerOption[T] {
	return func(c *Controller[T]) {
		c.debouncer = NewDebouncer(delay)
	}
}

// WithOnChange registers a callback run after every committed state change
func WithOnChange[T any](fn func(State[T])) ControllerOption[T] {
	return func(c *Controller[T]) {
		c.onChange = fn
	}
}

func NewController[T any](ctx context.Context, fetch Fetcher[T], base Query, opts ...ControllerOption[T]) *Controller[T] {
	if base.Page < DefaultPage {
		base.Page = DefaultPage
	}

	c := &Controller[T]{
		ctx:       ctx,
		fetch:     fetch,
		query:     base,
		debouncer: NewDebouncer(DefaultDebounce),
		state: State[T]{
			Page:   base.Page,
			Search: base.Search,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load fetches the current query synchronously and returns the resulting state
func (c *Controller[T]) Load() State[T] {
	token, q := c.begin(nil)
	c.commit(token, q)
	return c.State()
}

// Mount starts the first fetch in the background
func (c *Controller[T]) Mount() {
	c.dispatch(nil)
}

// SetPage fetches page at once; pages below 1 are clamped
func (c *Controller[T]) SetPage(page int) {
	if page < DefaultPage {
		page = DefaultPage
	}
	c.dispatch(func(q *Query) {
		q.Page = page
	})
}

func (c *Controller[T]) NextPage() {
	c.SetPage(c.State().Pager().Next())
}

func (c *Controller[T]) PreviousPage() {
	c.SetPage(c.State().Pager().Previous())
}

// SetSearch schedules one fetch after the debounce window, on page 1
func (c *Controller[T]) SetSearch(search string) {
	c.inflight.Add(1)
	dropped := c.debouncer.Trigger(func() {
		defer c.inflight.Done()
		c.dispatch(func(q *Query) {
			q.Search = search
			q.Page = DefaultPage
		})
	})
	if dropped {
		c.inflight.Done()
	}
}

func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Wait blocks until no fetch is in flight and no search is pending
func (c *Controller[T]) Wait() {
	c.inflight.Wait()
}

// Close drops a pending debounced search
func (c *Controller[T]) Close() {
	if c.debouncer.Stop() {
		c.inflight.Done()
	}
}

func (c *Controller[T]) dispatch(update func(*Query)) {
	token, q := c.begin(update)

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.commit(token, q)
	}()
}

func (c *Controller[T]) begin(update func(*Query)) (uint64, Query) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if update != nil {
		update(&c.query)
	}

	c.state.Loading = true
	c.state.Err = nil
	c.state.Page = c.query.Page
	c.state.Search = c.query.Search

	return c.gen.Next(), c.query
}

func (c *Controller[T]) commit(token uint64, q Query) {
	page, err := c.fetch(c.ctx, q)

	c.mu.Lock()
	if !c.gen.IsCurrent(token) {
		c.mu.Unlock()
		log.ForContext(c.ctx).Debug("listing: discarded superseded response")
		return
	}

	c.state.Loading = false
	c.state.Err = err
	if err == nil && page != nil {
		c.state.Items = page.Items
		c.state.Metadata = page.Metadata
	}
	snapshot := c.state
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(snapshot)
	}
}
