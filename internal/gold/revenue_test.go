package gold_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/gold"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/silver"
)

func order(id, customerID string, purchase time.Time) silver.CleanOrder {
	return silver.CleanOrder{OrderID: id, CustomerID: customerID, OrderStatus: "DELIVERED", PurchaseTS: purchase}
}

func item(orderID, productID string, price, freight float64) silver.CleanOrderItem {
	return silver.CleanOrderItem{OrderID: orderID, ProductID: productID, SellerID: "s1", Price: price, FreightValue: freight}
}

func TestAggregateDailyRevenue(t *testing.T) {
	jan1 := time.Date(2018, 1, 1, 9, 30, 0, 0, time.UTC)
	jan1Later := time.Date(2018, 1, 1, 22, 0, 0, 0, time.UTC)
	jan2 := time.Date(2018, 1, 2, 8, 0, 0, 0, time.UTC)

	orders := []silver.CleanOrder{
		order("o1", "c1", jan1),
		order("o2", "c2", jan1Later),
		order("o3", "c3", jan2),
	}
	items := []silver.CleanOrderItem{
		item("o1", "p1", 50, 10),
		item("o1", "p2", 30, 5),
		item("o2", "p1", 100, 20),
		item("o3", "p3", 25, 5),
		item("orphan", "p4", 999, 0), // no matching clean order, contributes nothing
	}

	facts := gold.AggregateDailyRevenue(orders, items)

	require.Len(t, facts, 2)

	assert.Equal(t, time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), facts[0].PurchaseDate)
	assert.InDelta(t, 215.0, facts[0].TotalRevenue, 1e-9)
	assert.Equal(t, 3, facts[0].TotalOrders)
	assert.Equal(t, 2, facts[0].TotalUniqueOrders)

	assert.Equal(t, time.Date(2018, 1, 2, 0, 0, 0, 0, time.UTC), facts[1].PurchaseDate)
	assert.InDelta(t, 30.0, facts[1].TotalRevenue, 1e-9)
	assert.Equal(t, 1, facts[1].TotalOrders)
	assert.Equal(t, 1, facts[1].TotalUniqueOrders)
}

func TestAggregateDailyRevenue_SortedAscending(t *testing.T) {
	orders := []silver.CleanOrder{
		order("o1", "c1", time.Date(2018, 5, 3, 0, 0, 0, 0, time.UTC)),
		order("o2", "c2", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)),
		order("o3", "c3", time.Date(2018, 3, 15, 0, 0, 0, 0, time.UTC)),
	}
	items := []silver.CleanOrderItem{
		item("o1", "p1", 10, 0),
		item("o2", "p1", 10, 0),
		item("o3", "p1", 10, 0),
	}

	facts := gold.AggregateDailyRevenue(orders, items)

	require.Len(t, facts, 3)
	for i := 1; i < len(facts); i++ {
		assert.True(t, facts[i-1].PurchaseDate.Before(facts[i].PurchaseDate))
	}
}

func TestAggregateDailyRevenue_Idempotent(t *testing.T) {
	orders := []silver.CleanOrder{
		order("o1", "c1", time.Date(2018, 1, 1, 10, 0, 0, 0, time.UTC)),
		order("o2", "c2", time.Date(2018, 1, 2, 10, 0, 0, 0, time.UTC)),
	}
	items := []silver.CleanOrderItem{
		item("o1", "p1", 50, 10),
		item("o2", "p2", 60, 15),
	}

	first := gold.AggregateDailyRevenue(orders, items)
	second := gold.AggregateDailyRevenue(orders, items)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestAggregateDailyRevenue_Empty(t *testing.T) {
	assert.Empty(t, gold.AggregateDailyRevenue(nil, nil))
}
