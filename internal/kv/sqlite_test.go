package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kaikari-xpress/internal/domain"
)

func TestOpenSQLite_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kaikari.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kaikari.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if _, err := s.GetItem(ctx, "kaikari_cart"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for fresh key, got %v", err)
	}

	if err := s.SetItem(ctx, "kaikari_cart", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	got, err := s.GetItem(ctx, "kaikari_cart")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if string(got) != `[{"id":1}]` {
		t.Fatalf("unexpected value %q", got)
	}

	// Overwrite replaces the whole value.
	if err := s.SetItem(ctx, "kaikari_cart", []byte(`[]`)); err != nil {
		t.Fatalf("SetItem overwrite failed: %v", err)
	}
	got, err = s.GetItem(ctx, "kaikari_cart")
	if err != nil {
		t.Fatalf("GetItem after overwrite failed: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("unexpected value after overwrite %q", got)
	}

	if err := s.RemoveItem(ctx, "kaikari_cart"); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if _, err := s.GetItem(ctx, "kaikari_cart"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kaikari.db")
	ctx := context.Background()

	s1, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("first OpenSQLite() failed: %v", err)
	}
	if err := s1.SetItem(ctx, "kaikariXpress_appData", []byte(`{"addresses":[]}`)); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	s1.Close()

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("second OpenSQLite() failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.GetItem(ctx, "kaikariXpress_appData")
	if err != nil {
		t.Fatalf("GetItem after reopen failed: %v", err)
	}
	if string(got) != `{"addresses":[]}` {
		t.Fatalf("unexpected value after reopen %q", got)
	}
}
