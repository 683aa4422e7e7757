package repository

import (
	"context"
	"testing"

	"propsearch/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNopRepository(t *testing.T) {
	repo := NewNopRepository()
	ctx := context.Background()

	assert.NoError(t, repo.LogSearch(ctx, model.SearchLog{SearchID: "abc", Query: "2bhk in pune"}))
	assert.NoError(t, repo.LogFeedback(ctx, "abc", "palm-grove", "click"))
	assert.NoError(t, repo.Close())
}
