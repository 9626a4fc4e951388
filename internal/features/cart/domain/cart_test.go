package domain

import (
	"sync"
	"testing"

	catalogdomain "storefront/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mug    = catalogdomain.Product{ID: 1, Name: "Mug", Price: 150, InStock: true}
	kettle = catalogdomain.Product{ID: 2, Name: "Kettle", Price: 1200, InStock: true}
	plate  = catalogdomain.Product{ID: 3, Name: "Plate", Price: 80.5, InStock: false}
)

func TestCart_AddMergesDuplicates(t *testing.T) {
	cart := NewCart("c1")

	cart.Add(mug)
	cart.Add(mug)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.Count())
}

func TestCart_AddRefreshesProduct(t *testing.T) {
	cart := NewCart("c1")
	cart.Add(mug)

	repriced := mug
	repriced.Price = 175
	cart.Add(repriced)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 175.0, items[0].Product.Price)
	assert.Equal(t, 350.0, cart.Total())
}

func TestCart_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart("c1")
	cart.Add(kettle)
	cart.Add(mug)
	cart.Add(plate)
	cart.Add(kettle)

	items := cart.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int{2, 1, 3}, []int{items[0].Product.ID, items[1].Product.ID, items[2].Product.ID})
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart("c1")
	cart.Add(mug)
	cart.Add(kettle)

	cart.Remove(mug.ID)
	assert.False(t, cart.Contains(mug.ID))
	assert.True(t, cart.Contains(kettle.ID))

	before := cart.Items()
	cart.Remove(999)
	assert.Equal(t, before, cart.Items())
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("Overwrites", func(t *testing.T) {
		cart := NewCart("c1")
		cart.Add(mug)

		cart.SetQuantity(mug.ID, 4)

		assert.Equal(t, 4, cart.Count())
		assert.Equal(t, 600.0, cart.Total())
	})

	t.Run("ZeroRemoves", func(t *testing.T) {
		cart := NewCart("c1")
		cart.Add(mug)

		cart.SetQuantity(mug.ID, 0)

		assert.Empty(t, cart.Items())
	})

	t.Run("NegativeRemoves", func(t *testing.T) {
		cart := NewCart("c1")
		cart.Add(mug)

		cart.SetQuantity(mug.ID, -2)

		assert.False(t, cart.Contains(mug.ID))
	})

	t.Run("AbsentIsNoop", func(t *testing.T) {
		cart := NewCart("c1")
		cart.Add(mug)

		cart.SetQuantity(kettle.ID, 3)

		assert.False(t, cart.Contains(kettle.ID))
		assert.Equal(t, 1, cart.Count())
	})
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("c1")
	cart.Add(mug)
	cart.Add(kettle)

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.Count())
}

func TestCart_View(t *testing.T) {
	cart := NewCart("c1")
	cart.Add(mug)
	cart.Add(plate)
	cart.SetQuantity(plate.ID, 2)

	view := cart.View()

	assert.Equal(t, "c1", view.ID)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.Count)
	assert.InDelta(t, 311.0, view.Total, 1e-9)
}

func TestCart_ItemsIsACopy(t *testing.T) {
	cart := NewCart("c1")
	cart.Add(mug)

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Count())
}

func TestCart_ConcurrentAdds(t *testing.T) {
	cart := NewCart("c1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cart.Add(mug)
		}()
	}
	wg.Wait()

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 50, items[0].Quantity)
}
