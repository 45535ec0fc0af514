package models

import (
	"math"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type Order struct {
	Property  string
	Direction Direction
}

// ParseOrder reads the "property[,asc|desc]" form used by the sort query parameter.
func ParseOrder(raw string) (Order, bool) {
	parts := strings.Split(raw, ",")
	property := strings.TrimSpace(parts[0])
	if property == "" {
		return Order{}, false
	}
	order := Order{Property: property, Direction: Asc}
	if len(parts) > 1 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
		order.Direction = Desc
	}
	return order, true
}

// Pageable selects a 0-based page of a result set.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

func NewPageable(page, size int, sort ...Order) Pageable {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	// keeps Offset from overflowing
	if page > math.MaxInt/size {
		page = math.MaxInt / size
	}
	return Pageable{Page: page, Size: size, Sort: sort}
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

func NewPage[T any](content []T, pageable Pageable, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if pageable.Size > 0 {
		totalPages = int((total + int64(pageable.Size) - 1) / int64(pageable.Size))
	}
	return Page[T]{
		Content:       content,
		Number:        pageable.Page,
		Size:          pageable.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

func EmptyPage[T any](pageable Pageable) Page[T] {
	return NewPage[T](nil, pageable, 0)
}

func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	content := make([]R, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}
	return Page[R]{
		Content:       content,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
