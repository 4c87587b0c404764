package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/catalog"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
)

func TestBuiltinGet(t *testing.T) {
	c := catalog.NewBuiltin()
	h, err := c.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Name != "Tropical Beach Resort" || len(h.Rooms) != 2 {
		t.Fatalf("unexpected hotel: %+v", h)
	}

	_, err = c.Get(context.Background(), 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBuiltinList_CopiesBacking(t *testing.T) {
	c := catalog.NewBuiltin()
	first, _ := c.List(context.Background())
	first[0].Name = "mutated"
	second, _ := c.List(context.Background())
	if second[0].Name == "mutated" {
		t.Fatal("List must not expose the backing catalog")
	}
}
