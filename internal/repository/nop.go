// Package repository holds the search log sinks.
package repository

import (
	"context"
	"errors"

	"propsearch/internal/model"
)

// ErrUnknownSearch is returned when feedback refers to a search that was never logged
var ErrUnknownSearch = errors.New("unknown search id")

// NopRepository discards every entry. It is used when no database is configured.
type NopRepository struct{}

// NewNopRepository creates a repository that records nothing
func NewNopRepository() *NopRepository {
	return &NopRepository{}
}

// LogSearch implements the search log
func (NopRepository) LogSearch(context.Context, model.SearchLog) error { return nil }

// LogFeedback implements the search log
func (NopRepository) LogFeedback(context.Context, string, string, string) error { return nil }

// Close implements the search log
func (NopRepository) Close() error { return nil }
