package models

import (
	"strings"
	"time"
)

// TagDelimiter separates individual tags inside the raw Tags column.
const TagDelimiter = "|"

// Sale represents one normalized retail sales transaction line.
// Records are immutable once loaded; nothing writes a field after ingestion.
// Nullable numeric columns use pointers so a blank cell is distinguishable
// from a legitimate zero.
type Sale struct {
	TransactionID      string     `json:"transactionId"`
	Date               time.Time  `json:"date"`
	CustomerID         string     `json:"customerId"`
	CustomerName       string     `json:"customerName"`
	PhoneNumber        string     `json:"phoneNumber"`
	Gender             string     `json:"gender"`
	Age                *int       `json:"age"`
	CustomerRegion     string     `json:"customerRegion"`
	CustomerType       string     `json:"customerType"`
	ProductID          string     `json:"productId"`
	ProductName        string     `json:"productName"`
	Brand              string     `json:"brand"`
	ProductCategory    string     `json:"productCategory"`
	Tags               string     `json:"tags"`
	Quantity           *int       `json:"quantity"`
	PricePerUnit       *float64   `json:"pricePerUnit"`
	DiscountPercentage *float64   `json:"discountPercentage"`
	TotalAmount        *float64   `json:"totalAmount"`
	FinalAmount        *float64   `json:"finalAmount"`
	PaymentMethod      string     `json:"paymentMethod"`
	OrderStatus        string     `json:"orderStatus"`
	DeliveryType       string     `json:"deliveryType"`
	StoreID            string     `json:"storeId"`
	StoreLocation      string     `json:"storeLocation"`
	SalespersonID      string     `json:"salespersonId"`
	EmployeeName       string     `json:"employeeName"`
}

// HasDate reports whether the record carries a parseable transaction date.
func (s Sale) HasDate() bool {
	return !s.Date.IsZero()
}

// TagList splits the raw Tags column into trimmed, non-empty entries.
func (s Sale) TagList() []string {
	if s.Tags == "" {
		return nil
	}
	parts := strings.Split(s.Tags, TagDelimiter)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
