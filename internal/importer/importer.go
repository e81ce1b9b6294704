package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"kaikari-xpress/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog exports and inserts/updates products.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts one product per row. Rows without an id
// or name are skipped; a malformed price aborts the run.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if product == nil {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, *product); err != nil {
			return imported, fmt.Errorf("upsert product %d: %w", product.ID, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	return index
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	idRaw := field(record, index, "id")
	name := field(record, index, "name")
	if idRaw == "" || name == "" {
		return nil, nil
	}

	id, err := strconv.Atoi(idRaw)
	if err != nil {
		return nil, fmt.Errorf("parse id %q: %w", idRaw, err)
	}

	priceRaw := field(record, index, "pricePaise")
	price, err := strconv.ParseInt(priceRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse price for product %d: %w", id, err)
	}

	product := &domain.Product{
		ID:         id,
		Name:       name,
		Weight:     field(record, index, "weight"),
		PricePaise: price,
		Category:   field(record, index, "category"),
		Image:      field(record, index, "image"),
	}

	if oldRaw := field(record, index, "oldPricePaise"); oldRaw != "" {
		old, err := strconv.ParseInt(oldRaw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse old price for product %d: %w", id, err)
		}
		product.OldPricePaise = &old
	}

	return product, nil
}
