package importer

import (
	"context"
	"strings"
	"testing"

	"kaikari-xpress/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,name,weight,pricePaise,oldPricePaise,category,image
1,Fresh Tomato,500g,1800,2500,veggies,https://example.com/tomato.jpg
,,,,,,
7,Lays Chips,50g,2000,,snacks,https://example.com/chips.jpg`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}

	if repo.items[0].ID != 1 || repo.items[0].Name != "Fresh Tomato" || repo.items[0].PricePaise != 1800 {
		t.Fatalf("unexpected product data: %+v", repo.items[0])
	}
	if repo.items[0].OldPricePaise == nil || *repo.items[0].OldPricePaise != 2500 {
		t.Fatalf("expected old price preserved, got %+v", repo.items[0].OldPricePaise)
	}
	if repo.items[1].OldPricePaise != nil {
		t.Fatalf("expected no old price on second product")
	}
	if repo.items[1].Category != "snacks" {
		t.Fatalf("unexpected category %q", repo.items[1].Category)
	}
}

func TestCSVImporter_BadPriceAborts(t *testing.T) {
	csvData := `id,name,pricePaise
1,Fresh Tomato,not-a-number`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestCSVImporter_ShuffledColumns(t *testing.T) {
	csvData := `category,pricePaise,id,name
drinks,4500,6,Coca Cola`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)
	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 || repo.items[0].ID != 6 || repo.items[0].Category != "drinks" {
		t.Fatalf("unexpected import result: %+v", repo.items)
	}
}
