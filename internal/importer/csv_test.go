package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPurchases(t *testing.T) {
	csv := `item_name,quantity,unit_cost,supplier,purchased_at
Chicken,10,2.50,Acme Foods,2025-03-01
Lettuce, 4 ,0.80,Green Co,2025-03-02
`
	purchases, err := ReadPurchases(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, purchases, 2)

	assert.Equal(t, "Chicken", purchases[0].ItemName)
	assert.Equal(t, 10.0, purchases[0].Quantity)
	assert.Equal(t, 2.5, purchases[0].UnitCost)
	assert.Equal(t, "Acme Foods", purchases[0].Supplier)
	assert.Equal(t, "2025-03-01", purchases[0].PurchasedAt.Format("2006-01-02"))

	assert.Equal(t, "Lettuce", purchases[1].ItemName)
	assert.Equal(t, 4.0, purchases[1].Quantity)
}

func TestReadPurchasesColumnOrderFromHeader(t *testing.T) {
	csv := `unit_cost,item_name,quantity
1.25,Cheese,8
`
	purchases, err := ReadPurchases(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "Cheese", purchases[0].ItemName)
	assert.Equal(t, 1.25, purchases[0].UnitCost)
}

func TestReadPurchasesMissingColumn(t *testing.T) {
	csv := `item_name,quantity
Chicken,10
`
	_, err := ReadPurchases(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unit_cost")
}

func TestReadPurchasesBadNumber(t *testing.T) {
	csv := `item_name,quantity,unit_cost
Chicken,lots,2.50
`
	_, err := ReadPurchases(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadSales(t *testing.T) {
	csv := `item_name,quantity,unit_price,sold_at
Burger,3,9.50,2025-03-05T19:30:00Z
Fries,2,4.00,2025-03-05
`
	sales, err := ReadSales(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, sales, 2)

	assert.Equal(t, "Burger", sales[0].ItemName)
	assert.Equal(t, 28.5, sales[0].Total)
	assert.Equal(t, 8.0, sales[1].Total)
}

func TestReadSalesNoHeader(t *testing.T) {
	_, err := ReadSales(strings.NewReader(""))
	require.Error(t, err)
}
