package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tnp/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1
)

// Page is a normalised 1-based page request
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for SQL queries
func (p Page) Offset() uint64 {
	return uint64((p.Number - 1) * p.Size)
}

// Limit returns the row limit for SQL queries
func (p Page) Limit() uint64 {
	return uint64(p.Size)
}

// NormalizePage clamps page and size into the accepted range.
func NormalizePage(page, size int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return Page{Number: page, Size: size}
}

// ParsePaginationParams extracts ?page=&size= from the request. Invalid values fall back to defaults.
func ParsePaginationParams(c *gin.Context) Page {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = DefaultPage
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil {
		size = DefaultPageSize
	}
	return NormalizePage(page, size)
}

// NewPaginationInfo builds the pagination block for a list response.
func NewPaginationInfo(totalItems int, p Page) dto.PaginationInfo {
	totalPages := 1
	if totalItems > 0 {
		totalPages = (totalItems + p.Size - 1) / p.Size
	}

	return dto.PaginationInfo{
		CurrentPage: p.Number,
		TotalPages:  totalPages,
		PageSize:    p.Size,
		TotalItems:  totalItems,
	}
}
