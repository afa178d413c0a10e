package repository

import "github.com/bagdasarian/member-roster/internal/domain"

// PageRequest is a zero-based page selector. Sort names a column from the
// sortable whitelist; anything else falls back to the primary key.
type PageRequest struct {
	Page int
	Size int
	Sort string
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// MemberPage carries the page content together with the total row count, so
// the caller can compute the page structure.
type MemberPage struct {
	Content    []*domain.Member
	TotalCount int64
	Page       int
	Size       int
}

func (p *MemberPage) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	pages := p.TotalCount / int64(p.Size)
	if p.TotalCount%int64(p.Size) != 0 {
		pages++
	}
	return int(pages)
}

func (p *MemberPage) HasNext() bool {
	return p.Page+1 < p.TotalPages()
}

// MemberSlice is the count-less variant: it only knows whether a next page
// exists, learned by fetching one row beyond the requested size.
type MemberSlice struct {
	Content []*domain.Member
	Page    int
	Size    int
	HasNext bool
}
