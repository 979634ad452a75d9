package analysis

import (
	"testing"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

func TestScatter(t *testing.T) {
	a := newRecord("a.png", 100, day(2023, 1, 1))
	b := newRecord("b.txt", 200, day(2023, 2, 1))
	c := newRecord("c.txt", 300, day(2023, 3, 1))
	d := newRecord("d.gif", 400, day(2023, 4, 1))

	plot := Scatter([]domain.FileRecord{a, b, c, d}, domain.NewExtensionFilter(".png", ".txt"), domain.AxisModified, domain.AxisSize)

	if len(plot.Series) != 2 {
		t.Fatalf("got %d series, want 2", len(plot.Series))
	}
	if plot.Series[0].Extension != ".txt" || len(plot.Series[0].Points) != 2 {
		t.Errorf("first series = %+v", plot.Series[0])
	}
	if plot.Series[1].Extension != ".png" {
		t.Errorf("second series = %+v", plot.Series[1])
	}

	p := plot.Series[1].Points[0]
	if p.Name != "a.png" || p.Y != 100 || p.X != float64(a.ModifiedAt.UnixMilli()) {
		t.Errorf("point = %+v", p)
	}
}

func TestScatter_EmptyFilter(t *testing.T) {
	records := []domain.FileRecord{newRecord("a.png", 1, day(2023, 1, 1))}
	if plot := Scatter(records, domain.NewExtensionFilter(), domain.AxisCreated, domain.AxisAccessed); !plot.IsEmpty() {
		t.Errorf("expected empty plot, got %+v", plot)
	}
}
