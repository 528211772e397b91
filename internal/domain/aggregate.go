package domain

import (
	"cmp"
	"slices"
	"strconv"
)

// TypeTotals accumulates amounts per transaction type.
type TypeTotals struct {
	Ingreso int64 `json:"ingreso"`
	Egreso  int64 `json:"egreso"`
}

func (t TypeTotals) Net() int64 {
	return t.Ingreso - t.Egreso
}

func (t *TypeTotals) add(txType TransactionType, amount int64) {
	switch txType {
	case TransactionTypeIngreso:
		t.Ingreso += amount
	case TransactionTypeEgreso:
		t.Egreso += amount
	}
}

// Aggregation holds grouped sums keyed by raw category and concept ids.
type Aggregation struct {
	ByCategory map[int32]TypeTotals
	ByConcept  map[int32]TypeTotals
	Totals     TypeTotals
	Count      int
}

// Aggregate sums transaction amounts by category, by concept and overall in a
// single pass. Ids without reference data still get their own bucket.
func Aggregate(txs []*Transaction) *Aggregation {
	agg := &Aggregation{
		ByCategory: make(map[int32]TypeTotals),
		ByConcept:  make(map[int32]TypeTotals),
	}
	for _, tx := range txs {
		cat := agg.ByCategory[tx.CategoryID]
		cat.add(tx.Type, tx.Amount)
		agg.ByCategory[tx.CategoryID] = cat

		con := agg.ByConcept[tx.ConceptID]
		con.add(tx.Type, tx.Amount)
		agg.ByConcept[tx.ConceptID] = con

		agg.Totals.add(tx.Type, tx.Amount)
		agg.Count++
	}
	return agg
}

// TotalsView is the presentation form of a TypeTotals.
type TotalsView struct {
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
	Net     Money `json:"net"`
}

func (t TypeTotals) View() TotalsView {
	return TotalsView{
		Income:  NewMoney(t.Ingreso),
		Expense: NewMoney(t.Egreso),
		Net:     NewMoney(t.Net()),
	}
}

// GroupRow is one line of a grouped summary.
type GroupRow struct {
	ID     int32      `json:"id"`
	Name   string     `json:"name"`
	Totals TypeTotals `json:"-"`
	TotalsView
}

// CategoryRows returns category groups sorted by name, then id.
func (a *Aggregation) CategoryRows(names map[int32]string) []GroupRow {
	return groupRows(a.ByCategory, names)
}

// ConceptRows returns concept groups sorted by name, then id.
func (a *Aggregation) ConceptRows(names map[int32]string) []GroupRow {
	return groupRows(a.ByConcept, names)
}

func groupRows(groups map[int32]TypeTotals, names map[int32]string) []GroupRow {
	rows := make([]GroupRow, 0, len(groups))
	for id, totals := range groups {
		rows = append(rows, GroupRow{
			ID:         id,
			Name:       DisplayName(names, id),
			Totals:     totals,
			TotalsView: totals.View(),
		})
	}
	slices.SortFunc(rows, func(x, y GroupRow) int {
		if c := cmp.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return cmp.Compare(x.ID, y.ID)
	})
	return rows
}

// DisplayName resolves id through names, falling back to the raw id.
func DisplayName(names map[int32]string, id int32) string {
	if name, ok := names[id]; ok {
		return name
	}
	return strconv.Itoa(int(id))
}
