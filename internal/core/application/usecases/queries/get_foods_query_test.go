package queries_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetFoodsQuery_Valid(t *testing.T) {
	query := queries.NewGetFoodsQuery("mains")
	require.NoError(t, query.Validate())
	assert.Equal(t, "mains", query.Category())
}

func TestNewGetFoodsQuery_NoCategory(t *testing.T) {
	query := queries.NewGetFoodsQuery("")
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Category())
}

func TestGetFoodsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetFoodsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetFoodsQueryIsNotConstructed)
}
