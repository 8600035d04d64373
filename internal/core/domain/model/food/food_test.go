package food_test

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFood(t *testing.T) *food.Food {
	t.Helper()
	price, err := kernel.PriceFromString("12.50")
	require.NoError(t, err)
	f, err := food.NewFood(kernel.NewUUID(), "jollof rice", "with chicken", price, "mains", time.Now())
	require.NoError(t, err)
	return f
}

func TestNewFood(t *testing.T) {
	t.Run("creates available item", func(t *testing.T) {
		f := newTestFood(t)

		assert.True(t, f.IsAvailable())
		assert.Equal(t, "jollof rice", f.Name())
		assert.Equal(t, "mains", f.Category())
	})

	t.Run("requires name and category", func(t *testing.T) {
		price, err := kernel.PriceFromString("10")
		require.NoError(t, err)

		_, err = food.NewFood(kernel.NewUUID(), "", "", price, "mains", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = food.NewFood(kernel.NewUUID(), "jollof rice", "", price, "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires constructed price", func(t *testing.T) {
		var zeroPrice kernel.Price
		_, err := food.NewFood(kernel.NewUUID(), "jollof rice", "", zeroPrice, "mains", time.Now())
		require.Error(t, err)
	})

	t.Run("zero value food fails validation", func(t *testing.T) {
		require.ErrorIs(t, (&food.Food{}).Validate(), food.ErrFoodIsNotConstructed)
	})
}

func TestRestoreFood(t *testing.T) {
	price, err := kernel.PriceFromString("8")
	require.NoError(t, err)

	f, err := food.RestoreFood(kernel.NewUUID(), "moin moin", "", price, "sides", false, time.Now())

	require.NoError(t, err)
	assert.False(t, f.IsAvailable())
}

func TestFood_Mutations(t *testing.T) {
	t.Run("rename rejects empty name", func(t *testing.T) {
		f := newTestFood(t)

		require.ErrorIs(t, f.Rename(""), errs.ErrValueIsRequired)
		require.NoError(t, f.Rename("fried rice"))
		assert.Equal(t, "fried rice", f.Name())
	})

	t.Run("change price requires valid price", func(t *testing.T) {
		f := newTestFood(t)
		var zeroPrice kernel.Price

		require.Error(t, f.ChangePrice(zeroPrice))

		newPrice, err := kernel.PriceFromString("15")
		require.NoError(t, err)
		require.NoError(t, f.ChangePrice(newPrice))
		assert.True(t, f.Price().IsEqual(newPrice))
	})

	t.Run("availability toggles", func(t *testing.T) {
		f := newTestFood(t)

		f.SetAvailability(false)
		assert.False(t, f.IsAvailable())

		f.SetAvailability(true)
		assert.True(t, f.IsAvailable())
	})

	t.Run("change category rejects empty value", func(t *testing.T) {
		f := newTestFood(t)

		require.ErrorIs(t, f.ChangeCategory(""), errs.ErrValueIsRequired)
		require.NoError(t, f.ChangeCategory("specials"))
		assert.Equal(t, "specials", f.Category())
	})
}
