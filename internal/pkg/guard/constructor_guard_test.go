package guard_test

import (
	"errors"
	"testing"

	"kitchen/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type FoodRef struct {
		id    string
		name  string
		guard guard.ConstructorGuard
	}

	var errFoodRefNotConstructed = errors.New("FoodRef must be created via NewFoodRef")

	newFoodRef := func(id, name string) (FoodRef, error) {
		if id == "" {
			return FoodRef{}, errors.New("id is required")
		}
		if name == "" {
			return FoodRef{}, errors.New("name is required")
		}
		return FoodRef{
			id:    id,
			name:  name,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateFoodRef := func(f FoodRef) error {
		return f.guard.Validate(errFoodRefNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		ref, err := newFoodRef("42", "jollof rice")

		require.NoError(t, err)
		require.NoError(t, validateFoodRef(ref))
		assert.Equal(t, "42", ref.id)
		assert.Equal(t, "jollof rice", ref.name)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var ref FoodRef // zero value

		err := validateFoodRef(ref)

		require.Error(t, err)
		assert.Equal(t, errFoodRefNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newFoodRef("", "jollof rice")
		require.Error(t, err)

		_, err = newFoodRef("42", "")
		require.Error(t, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardImmutability verifies the guard can be safely copied.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		guardCopy := g

		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
