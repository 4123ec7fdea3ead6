package virtualitem

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageSizes are the sizes offered by the browser console.
var PageSizes = []int{5, 10, 25, 50, 100}

// PageRequest selects one page of a listing. Page is 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// InRange reports whether the page offset fits in an int.
func (p PageRequest) InRange() bool {
	if p.Page < 1 || p.Limit < 1 {
		return false
	}
	return p.Page-1 <= math.MaxInt/p.Limit
}

// Skip is the number of matching items before the page. It saturates at
// math.MaxInt instead of wrapping.
func (p PageRequest) Skip() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if !p.InRange() {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// PageInfo describes where a page sits in the full result.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPageInfo computes page metadata for a total match count.
func NewPageInfo(req PageRequest, total int64) PageInfo {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}
	return PageInfo{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}
}

// Page is one slice of a filtered listing.
type Page struct {
	Items []*VirtualItem
	Total int64
	Info  PageInfo
}
