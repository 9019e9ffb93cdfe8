package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/south-indian-kitchen/backend/models"
)

func sampleItems() []models.CartItem {
	return []models.CartItem{
		{Dish: models.Dish{ID: "1", Name: "Masala Dosa", Price: 120, Category: "Dosa", Available: true}, Quantity: 2},
		{Dish: models.Dish{ID: "9", Name: "Filter Coffee", Price: 40, Category: "Beverage", Available: true}, Quantity: 2},
	}
}

func TestLoadAbsentSessionIsEmpty(t *testing.T) {
	store := NewCartStore()
	items := store.Load("no-such-session")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store := NewCartStore()
	store.Save("s1", sampleItems())

	items := store.Load("s1")
	assert.Len(t, items, 2)
	assert.Equal(t, "Masala Dosa", items[0].Dish.Name)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestSessionsArePartitioned(t *testing.T) {
	store := NewCartStore()
	store.Save("s1", sampleItems())

	assert.Empty(t, store.Load("s2"))
	assert.Len(t, store.Load("s1"), 2)
}

func TestCorruptBlobDegradesToEmptyCart(t *testing.T) {
	store := NewCartStore()
	store.blobs["s1"] = []byte("{not valid json")

	items := store.Load("s1")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestClearDeletesBlob(t *testing.T) {
	store := NewCartStore()
	store.Save("s1", sampleItems())
	store.Clear("s1")

	assert.Empty(t, store.Load("s1"))
}

func TestSaveOverwritesWholesale(t *testing.T) {
	store := NewCartStore()
	store.Save("s1", sampleItems())
	store.Save("s1", sampleItems()[:1])

	assert.Len(t, store.Load("s1"), 1)
}
