package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveVia(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantPer    int
		wantOffset int
	}{
		{"defaults", "/x", 1, 20, 0},
		{"explicit page and per_page", "/x?page=3&per_page=10", 3, 10, 20},
		{"legacy limit alias", "/x?limit=5", 1, 5, 0},
		{"per_page wins over limit", "/x?per_page=7&limit=50", 1, 7, 0},
		{"per_page capped at max", "/x?per_page=500", 1, 100, 0},
		{"garbage falls back to defaults", "/x?page=abc&per_page=-1", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := resolveVia(t, tt.target, 20, 100)
			if p.Page != tt.wantPage || p.PerPage != tt.wantPer || p.Offset != tt.wantOffset {
				t.Errorf("got page=%d per=%d offset=%d, want %d/%d/%d",
					p.Page, p.PerPage, p.Offset, tt.wantPage, tt.wantPer, tt.wantOffset)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10}
	got := BuildPagination(25, p, 10)

	if got.TotalPages != 3 {
		t.Errorf("total_pages = %d, want 3", got.TotalPages)
	}
	if !got.HasNext || !got.HasPrev {
		t.Errorf("has_next=%v has_prev=%v, want true/true", got.HasNext, got.HasPrev)
	}

	last := BuildPagination(25, Paging{Page: 3, PerPage: 10}, 5)
	if last.HasNext {
		t.Error("last page must not have next")
	}
	if last.Count != 5 {
		t.Errorf("count = %d, want 5", last.Count)
	}
}
