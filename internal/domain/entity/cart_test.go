package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id int, name string, price int64) CatalogItem {
	return CatalogItem{ID: id, Name: name, Price: decimal.NewFromInt(price)}
}

func TestCart_AddMergesLines(t *testing.T) {
	cart := &Cart{}
	chai := testItem(5, "Cutting Chai", 15)
	dosa := testItem(7, "Masala Dosa", 70)

	cart.Add(chai)
	cart.Add(dosa)
	cart.Add(chai)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Cutting Chai", lines[0].Name)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 2, cart.DistinctLines())
}

func TestCart_ChangeQuantityRemovesAtZero(t *testing.T) {
	cart := &Cart{}
	cart.Add(testItem(5, "Cutting Chai", 15))

	cart.ChangeQuantity(5, 3)
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, 4, cart.Lines()[0].Quantity)

	cart.ChangeQuantity(5, -4)
	assert.True(t, cart.Empty())
}

func TestCart_Subtotal(t *testing.T) {
	cart := &Cart{}
	chai := testItem(5, "Cutting Chai", 15)
	cart.Add(chai)
	cart.Add(chai)
	cart.Add(testItem(7, "Masala Dosa", 70))

	assert.Equal(t, "100", cart.Subtotal().String())
}

func TestCart_Description(t *testing.T) {
	cart := &Cart{}
	assert.Equal(t, "", cart.Description())

	chai := testItem(5, "Cutting Chai", 15)
	cart.Add(chai)
	cart.Add(chai)
	cart.Add(testItem(7, "Masala Dosa", 70))

	assert.Equal(t, "2x Cutting Chai, 1x Masala Dosa", cart.Description())
}

func TestCart_CloneIsIndependent(t *testing.T) {
	cart := &Cart{}
	cart.Add(testItem(5, "Cutting Chai", 15))

	clone := cart.Clone()
	cart.Clear()

	assert.True(t, cart.Empty())
	assert.False(t, clone.Empty())
}
