package cart_test

import (
	"testing"

	"kitchen/internal/core/domain/model/cart"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	t.Run("creates line", func(t *testing.T) {
		line, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), 2)

		require.NoError(t, err)
		assert.Equal(t, 2, line.Quantity())
		assert.NoError(t, line.Validate())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nil line fails validation", func(t *testing.T) {
		var line *cart.Line
		require.ErrorIs(t, line.Validate(), cart.ErrLineIsNotConstructed)
	})
}

func TestNewCart(t *testing.T) {
	t.Run("creates empty cart", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.Lines())
	})

	t.Run("rejects invalid user id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := cart.NewCart(zeroID)
		require.Error(t, err)
	})

	t.Run("zero value cart fails validation", func(t *testing.T) {
		require.ErrorIs(t, (&cart.Cart{}).Validate(), cart.ErrCartIsNotConstructed)
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("adds a new line", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		foodID := kernel.NewUUID()

		line, err := c.AddItem(kernel.NewUUID(), foodID, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, line.Quantity())
		assert.True(t, line.FoodID().IsEqual(foodID))
		assert.Len(t, c.Lines(), 1)
	})

	t.Run("adding the same food twice merges into one line", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		foodID := kernel.NewUUID()

		first, err := c.AddItem(kernel.NewUUID(), foodID, 1)
		require.NoError(t, err)
		second, err := c.AddItem(kernel.NewUUID(), foodID, 1)
		require.NoError(t, err)

		assert.Len(t, c.Lines(), 1)
		assert.Equal(t, 2, second.Quantity())
		assert.True(t, first.ID().IsEqual(second.ID()))
	})

	t.Run("merge replaces quantity with existing plus added", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		foodID := kernel.NewUUID()

		_, err = c.AddItem(kernel.NewUUID(), foodID, 2)
		require.NoError(t, err)
		line, err := c.AddItem(kernel.NewUUID(), foodID, 3)
		require.NoError(t, err)

		assert.Equal(t, 5, line.Quantity())
	})

	t.Run("different foods get separate lines", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		_, err = c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)
		_, err = c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)

		assert.Len(t, c.Lines(), 2)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		_, err = c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_RemoveLine(t *testing.T) {
	t.Run("removes an existing line", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		line, err := c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)

		require.NoError(t, c.RemoveLine(line.ID()))
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown line yields not found", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		err = c.RemoveLine(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCart_Clear(t *testing.T) {
	t.Run("clears all lines", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		_, err = c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1)
		require.NoError(t, err)
		_, err = c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2)
		require.NoError(t, err)

		c.Clear()

		assert.True(t, c.IsEmpty())
	})

	t.Run("clearing an empty cart succeeds", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		c.Clear()

		assert.True(t, c.IsEmpty())
	})
}

func TestRestoreCart(t *testing.T) {
	t.Run("restores lines from persistence", func(t *testing.T) {
		userID := kernel.NewUUID()
		line, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), 3)
		require.NoError(t, err)

		c, err := cart.RestoreCart(userID, []*cart.Line{line})

		require.NoError(t, err)
		assert.Len(t, c.Lines(), 1)
		assert.True(t, c.UserID().IsEqual(userID))
	})

	t.Run("rejects unconstructed lines", func(t *testing.T) {
		_, err := cart.RestoreCart(kernel.NewUUID(), []*cart.Line{{}})
		require.ErrorIs(t, err, cart.ErrLineIsNotConstructed)
	})
}
