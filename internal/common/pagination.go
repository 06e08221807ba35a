package common

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// ParsePage reads page/limit query values. Empty values take the defaults,
// a limit above max is clamped. A page whose skip would overflow is
// rejected.
func ParsePage(pageRaw, limitRaw string, defaultLimit, maxLimit int) (PageRequest, error) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	p := PageRequest{Page: DefaultPage, Limit: defaultLimit}

	if pageRaw != "" {
		n, err := strconv.Atoi(pageRaw)
		if err != nil || n < 1 {
			return p, InvalidArgument("page must be a positive integer")
		}
		p.Page = n
	}
	if limitRaw != "" {
		n, err := strconv.Atoi(limitRaw)
		if err != nil || n < 1 {
			return p, InvalidArgument("limit must be a positive integer")
		}
		p.Limit = n
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if int64(p.Page-1) > math.MaxInt64/int64(p.Limit) {
		return p, InvalidArgument("page is out of range")
	}
	return p, nil
}

// RequireFound fails with NotFound when the first page of a view is empty.
// Pages past the end stay valid and come back empty.
func RequireFound(n int, p PageRequest, what string) error {
	if n == 0 && p.Page <= 1 {
		return NotFound("no " + what + " found")
	}
	return nil
}

type SortSpec struct {
	Field string
	Desc  bool
}

// Order is the mongo sort direction.
func (s SortSpec) Order() int {
	if s.Desc {
		return -1
	}
	return 1
}

// ParseSort resolves a public sort key through allowed (public name to
// stored field). Defaults to the "createdAt" key, newest first.
func ParseSort(sortBy, sortType string, allowed map[string]string) (SortSpec, error) {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	field, ok := allowed[sortBy]
	if !ok {
		return SortSpec{}, InvalidArgument("cannot sort by " + sortBy)
	}

	switch strings.ToLower(sortType) {
	case "", "desc":
		return SortSpec{Field: field, Desc: true}, nil
	case "asc":
		return SortSpec{Field: field}, nil
	default:
		return SortSpec{}, InvalidArgument("sortType must be asc or desc")
	}
}
