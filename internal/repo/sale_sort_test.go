package repo

import (
	"reflect"
	"testing"

	"github.com/rogerio-castellano/retail-sales-api/internal/models"
)

func TestSortSales_MissingKeysSortLast(t *testing.T) {
	sales := []models.Sale{
		{TransactionID: "no-date"},
		{TransactionID: "old", Date: day("2023-01-01")},
		{TransactionID: "new", Date: day("2023-12-01")},
	}

	asc := append([]models.Sale(nil), sales...)
	sortSales(asc, SortByDate, SortAsc)
	if got, want := ids(asc), []string{"old", "new", "no-date"}; !reflect.DeepEqual(got, want) {
		t.Errorf("asc: expected %v, got %v", want, got)
	}

	desc := append([]models.Sale(nil), sales...)
	sortSales(desc, SortByDate, SortDesc)
	if got, want := ids(desc), []string{"new", "old", "no-date"}; !reflect.DeepEqual(got, want) {
		t.Errorf("desc: expected %v, got %v", want, got)
	}
}

func TestSortSales_CustomerCaseInsensitive(t *testing.T) {
	sales := []models.Sale{
		{TransactionID: "b", CustomerName: "bob"},
		{TransactionID: "A", CustomerName: "Alice"},
		{TransactionID: "none"},
	}
	sortSales(sales, SortByCustomer, SortAsc)
	if got, want := ids(sales), []string{"A", "b", "none"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortSales_NilQuantityTreatedAsZero(t *testing.T) {
	q5 := 5
	sales := []models.Sale{
		{TransactionID: "five", Quantity: &q5},
		{TransactionID: "nil"},
	}
	sortSales(sales, SortByQuantity, SortAsc)
	if got, want := ids(sales), []string{"nil", "five"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSortSales_StableForEqualKeys(t *testing.T) {
	when := day("2023-06-15")
	sales := make([]models.Sale, 5)
	for i := range sales {
		sales[i] = models.Sale{TransactionID: string(rune('a' + i)), Date: when}
	}
	sortSales(sales, SortByDate, SortDesc)
	if got, want := ids(sales), []string{"a", "b", "c", "d", "e"}; !reflect.DeepEqual(got, want) {
		t.Errorf("equal keys must preserve original order, got %v", got)
	}
}
