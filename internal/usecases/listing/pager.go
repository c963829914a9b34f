package listing

import (
	"fmt"

	"github.com/pointnow/admin-bff/internal/domain"
)

// Pager derives the Next/Previous controls from the page metadata
type Pager struct {
	meta domain.PageMetadata
}

func NewPager(meta domain.PageMetadata) Pager {
	return Pager{meta: meta}
}

func (p Pager) Page() int {
	if p.meta.Page < DefaultPage {
		return DefaultPage
	}
	return p.meta.Page
}

func (p Pager) CanPrevious() bool {
	return p.meta.HasPrevious
}

func (p Pager) CanNext() bool {
	return p.meta.HasNext
}

// Previous never goes below page 1
func (p Pager) Previous() int {
	if !p.CanPrevious() || p.Page() <= DefaultPage {
		return DefaultPage
	}
	return p.Page() - 1
}

func (p Pager) Next() int {
	if !p.CanNext() {
		return p.Page()
	}
	return p.Page() + 1
}

// Showing renders the "Showing X of Y" caption for the visible rows
func (p Pager) Showing(visible int) string {
	return fmt.Sprintf("Showing %d of %d", visible, p.meta.Total)
}

// Controls is the JSON shape of the pagination buttons
type Controls struct {
	Page         int  `json:"page"`
	CanPrevious  bool `json:"can_previous"`
	CanNext      bool `json:"can_next"`
	PreviousPage int  `json:"previous_page"`
	NextPage     int  `json:"next_page"`
}

func (p Pager) Controls() Controls {
	return Controls{
		Page:         p.Page(),
		CanPrevious:  p.CanPrevious(),
		CanNext:      p.CanNext(),
		PreviousPage: p.Previous(),
		NextPage:     p.Next(),
	}
}
