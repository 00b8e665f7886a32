package ingest

import (
	"strings"
	"testing"
)

const sampleCSV = `Transaction ID,Date,Customer ID,Customer Name,Phone Number,Gender,Age,Customer Region,Customer Type,Product ID,Product Name,Brand,Product Category,Tags,Quantity,Price per Unit,Discount Percentage,Total Amount,Final Amount,Payment Method,Order Status,Delivery Type,Store ID,Store Location,Salesperson ID,Employee Name
T1,2023-09-01,C1,Alice Johnson,555-0101,Female,25,East,Regular,P1,Laptop,Acme,Electronics,sale|new,3,999.99,10,2999.97,2699.97,Card,Delivered,Home,S1,Boston,E1,Dana
T2,not-a-date,C2,Bob Smith,555-0202,Male,,West,Member,P2,Shirt,Basics,Clothing,clearance,,19.99,,19.99,19.99,Cash,Pending,Pickup,S2,Denver,E2,Evan
`

func TestParseSales(t *testing.T) {
	sales, err := ParseSales(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 records, got %d", len(sales))
	}

	first := sales[0]
	if first.TransactionID != "T1" {
		t.Errorf("expected transaction T1, got %q", first.TransactionID)
	}
	if !first.HasDate() || first.Date.Format("2006-01-02") != "2023-09-01" {
		t.Errorf("expected parsed date 2023-09-01, got %v", first.Date)
	}
	if first.Age == nil || *first.Age != 25 {
		t.Errorf("expected age 25, got %v", first.Age)
	}
	if first.Quantity == nil || *first.Quantity != 3 {
		t.Errorf("expected quantity 3, got %v", first.Quantity)
	}
	if first.PricePerUnit == nil || *first.PricePerUnit != 999.99 {
		t.Errorf("expected price 999.99, got %v", first.PricePerUnit)
	}
	if got := first.TagList(); len(got) != 2 || got[0] != "sale" || got[1] != "new" {
		t.Errorf("expected tags [sale new], got %v", got)
	}

	second := sales[1]
	if second.HasDate() {
		t.Errorf("unparseable date should yield zero time, got %v", second.Date)
	}
	if second.Age != nil {
		t.Errorf("blank age should be nil, got %v", *second.Age)
	}
	if second.Quantity != nil {
		t.Errorf("blank quantity should be nil, got %v", *second.Quantity)
	}
	if second.DiscountPercentage != nil {
		t.Errorf("blank discount should be nil, got %v", *second.DiscountPercentage)
	}
}

func TestParseSales_HeaderCasingIgnored(t *testing.T) {
	csv := "TRANSACTION ID,CUSTOMER NAME\nT9,Zoe\n"
	sales, err := ParseSales(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 1 || sales[0].TransactionID != "T9" || sales[0].CustomerName != "Zoe" {
		t.Errorf("header matching should ignore casing, got %+v", sales)
	}
}

func TestParseSales_MissingColumnsReadEmpty(t *testing.T) {
	csv := "Transaction ID\nT1\n"
	sales, err := ParseSales(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sales[0].CustomerName != "" || sales[0].Age != nil {
		t.Errorf("absent columns should read as empty, got %+v", sales[0])
	}
}

func TestParseSales_EmptyInput(t *testing.T) {
	if _, err := ParseSales(strings.NewReader("")); err == nil {
		t.Error("expected an error for input without a header")
	}
}
