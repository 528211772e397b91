package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []*Transaction {
	return []*Transaction{
		{ID: 1, Type: TransactionTypeIngreso, CategoryID: 1, ConceptID: 10, Amount: 100000},
		{ID: 2, Type: TransactionTypeEgreso, CategoryID: 2, ConceptID: 20, Amount: 30000},
		{ID: 3, Type: TransactionTypeEgreso, CategoryID: 2, ConceptID: 21, Amount: 12550},
		{ID: 4, Type: TransactionTypeIngreso, CategoryID: 1, ConceptID: 11, Amount: 5001},
		{ID: 5, Type: TransactionTypeEgreso, CategoryID: 3, ConceptID: 30, Amount: 1},
		{ID: 6, Type: TransactionTypeIngreso, CategoryID: 3, ConceptID: 30, Amount: 999},
	}
}

func TestAggregate_ExampleScenario(t *testing.T) {
	txs := []*Transaction{
		{Type: TransactionTypeIngreso, CategoryID: 1, Amount: 100000},
		{Type: TransactionTypeEgreso, CategoryID: 2, Amount: 30000},
	}

	agg := Aggregate(txs)

	assert.Equal(t, TypeTotals{Ingreso: 100000, Egreso: 30000}, agg.Totals)
	view := agg.Totals.View()
	assert.Equal(t, "$1,000.00", view.Income.Display)
	assert.Equal(t, "$300.00", view.Expense.Display)
	assert.Equal(t, "$700.00", view.Net.Display)
}

func TestAggregate_ConservesTotalsAcrossGroups(t *testing.T) {
	txs := sampleTransactions()
	agg := Aggregate(txs)

	var wantIngreso, wantEgreso int64
	for _, tx := range txs {
		if tx.Type == TransactionTypeIngreso {
			wantIngreso += tx.Amount
		} else {
			wantEgreso += tx.Amount
		}
	}

	for name, groups := range map[string]map[int32]TypeTotals{
		"category": agg.ByCategory,
		"concept":  agg.ByConcept,
	} {
		var ingreso, egreso int64
		for _, g := range groups {
			ingreso += g.Ingreso
			egreso += g.Egreso
		}
		assert.Equal(t, wantIngreso, ingreso, "ingreso by %s", name)
		assert.Equal(t, wantEgreso, egreso, "egreso by %s", name)
	}
	assert.Equal(t, TypeTotals{Ingreso: wantIngreso, Egreso: wantEgreso}, agg.Totals)
	assert.Equal(t, len(txs), agg.Count)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	txs := sampleTransactions()
	want := Aggregate(txs)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]*Transaction, len(txs))
		copy(shuffled, txs)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		assert.Equal(t, want, Aggregate(shuffled))
	}
}

func TestAggregate_NetMatchesSumOfCategoryNets(t *testing.T) {
	agg := Aggregate(sampleTransactions())

	var sum int64
	for _, g := range agg.ByCategory {
		sum += g.Net()
	}
	assert.Equal(t, agg.Totals.Net(), sum)
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil)

	require.NotNil(t, agg)
	assert.Empty(t, agg.ByCategory)
	assert.Empty(t, agg.ByConcept)
	assert.Equal(t, TypeTotals{}, agg.Totals)
	assert.Equal(t, 0, agg.Count)
}

func TestAggregate_UnresolvedIDsStillBucketed(t *testing.T) {
	txs := []*Transaction{
		{Type: TransactionTypeEgreso, CategoryID: 999, ConceptID: 888, Amount: 4200},
	}

	agg := Aggregate(txs)
	assert.Equal(t, TypeTotals{Egreso: 4200}, agg.ByCategory[999])
	assert.Equal(t, TypeTotals{Egreso: 4200}, agg.ByConcept[888])

	rows := agg.CategoryRows(map[int32]string{1: "Aportes"})
	require.Len(t, rows, 1)
	assert.Equal(t, "999", rows[0].Name)
	assert.Equal(t, "-$42.00", rows[0].Net.Display)
}

func TestAggregation_CategoryRowsSorted(t *testing.T) {
	agg := Aggregate(sampleTransactions())
	names := map[int32]string{1: "Aportes", 2: "Actividad Sindical", 3: "Aportes"}

	rows := agg.CategoryRows(names)

	require.Len(t, rows, 3)
	assert.Equal(t, int32(2), rows[0].ID)
	assert.Equal(t, int32(1), rows[1].ID)
	assert.Equal(t, int32(3), rows[2].ID)
	assert.Equal(t, int64(105001), rows[1].Totals.Ingreso)
	assert.Equal(t, "$1,050.01", rows[1].Income.Display)
}

func TestAggregation_ConceptRows(t *testing.T) {
	agg := Aggregate(sampleTransactions())

	rows := agg.ConceptRows(nil)

	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, DisplayName(nil, r.ID), r.Name)
	}
	for _, r := range rows {
		if r.ID == 30 {
			assert.Equal(t, TypeTotals{Ingreso: 999, Egreso: 1}, r.Totals)
			assert.Equal(t, int64(998), r.Net.Cents)
		}
	}
}
