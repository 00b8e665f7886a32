package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/retail-sales-api/internal/models"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseOptInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// row wraps one CSV record with the header index so fields can be read by
// column name. Missing columns read as empty strings.
type row struct {
	index  map[string]int
	record []string
}

func (r row) get(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// ParseSales reads a sales CSV into normalized records. The first row must be
// a header; columns are matched by lowercased name, so header casing does not
// matter. Blank or malformed numeric cells become nil, unparseable dates
// become the zero time.
func ParseSales(src io.Reader) ([]models.Sale, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var sales []models.Sale
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		r := row{index: index, record: record}
		sales = append(sales, models.Sale{
			TransactionID:      r.get("transaction id"),
			Date:               parseDate(r.get("date")),
			CustomerID:         r.get("customer id"),
			CustomerName:       r.get("customer name"),
			PhoneNumber:        r.get("phone number"),
			Gender:             r.get("gender"),
			Age:                parseOptInt(r.get("age")),
			CustomerRegion:     r.get("customer region"),
			CustomerType:       r.get("customer type"),
			ProductID:          r.get("product id"),
			ProductName:        r.get("product name"),
			Brand:              r.get("brand"),
			ProductCategory:    r.get("product category"),
			Tags:               r.get("tags"),
			Quantity:           parseOptInt(r.get("quantity")),
			PricePerUnit:       parseOptFloat(r.get("price per unit")),
			DiscountPercentage: parseOptFloat(r.get("discount percentage")),
			TotalAmount:        parseOptFloat(r.get("total amount")),
			FinalAmount:        parseOptFloat(r.get("final amount")),
			PaymentMethod:      r.get("payment method"),
			OrderStatus:        r.get("order status"),
			DeliveryType:       r.get("delivery type"),
			StoreID:            r.get("store id"),
			StoreLocation:      r.get("store location"),
			SalespersonID:      r.get("salesperson id"),
			EmployeeName:       r.get("employee name"),
		})
	}
	return sales, nil
}
