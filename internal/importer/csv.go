// Package importer reads purchase and sales history from CSV uploads.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"larder/internal/models"
)

// Purchase columns: item_name, quantity, unit_cost, supplier, purchased_at.
// Sale columns: item_name, quantity, unit_price, sold_at. Column order is
// taken from the header row; dates are RFC 3339 or YYYY-MM-DD.

// ReadPurchases parses a purchases CSV
func ReadPurchases(r io.Reader) ([]models.Purchase, error) {
	records, index, err := readAll(r, "item_name", "quantity", "unit_cost")
	if err != nil {
		return nil, err
	}

	purchases := make([]models.Purchase, 0, len(records))
	for i, rec := range records {
		qty, err := parseFloat(rec[index["quantity"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad quantity: %w", i+2, err)
		}
		cost, err := parseFloat(rec[index["unit_cost"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad unit_cost: %w", i+2, err)
		}

		p := models.Purchase{
			ItemName: strings.TrimSpace(rec[index["item_name"]]),
			Quantity: qty,
			UnitCost: cost,
		}
		if col, ok := index["supplier"]; ok {
			p.Supplier = strings.TrimSpace(rec[col])
		}
		if col, ok := index["purchased_at"]; ok {
			if p.PurchasedAt, err = parseDate(rec[col]); err != nil {
				return nil, fmt.Errorf("row %d: bad purchased_at: %w", i+2, err)
			}
		} else {
			p.PurchasedAt = time.Now()
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// ReadSales parses a sales CSV
func ReadSales(r io.Reader) ([]models.Sale, error) {
	records, index, err := readAll(r, "item_name", "quantity", "unit_price")
	if err != nil {
		return nil, err
	}

	sales := make([]models.Sale, 0, len(records))
	for i, rec := range records {
		qty, err := parseFloat(rec[index["quantity"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad quantity: %w", i+2, err)
		}
		price, err := parseFloat(rec[index["unit_price"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad unit_price: %w", i+2, err)
		}

		s := models.Sale{
			ItemName:  strings.TrimSpace(rec[index["item_name"]]),
			Quantity:  qty,
			UnitPrice: price,
			Total:     qty * price,
		}
		if col, ok := index["sold_at"]; ok {
			if s.SoldAt, err = parseDate(rec[col]); err != nil {
				return nil, fmt.Errorf("row %d: bad sold_at: %w", i+2, err)
			}
		} else {
			s.SoldAt = time.Now()
		}
		sales = append(sales, s)
	}
	return sales, nil
}

// readAll reads the header plus rows and verifies required columns exist
func readAll(r io.Reader, required ...string) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("missing CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", name)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("malformed CSV: %w", err)
	}
	return records, index, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
