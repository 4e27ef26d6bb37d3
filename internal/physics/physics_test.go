package physics

import (
	"sort"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 2, 2), true},
		{"touching right edge", NewRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewRect(0, 10, 5, 5), false},
		{"separate", NewRect(20, 20, 5, 5), false},
		{"one unit overlap", NewRect(9, 9, 5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectClampInside(t *testing.T) {
	field := NewRect(0, 0, 800, 600)
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside untouched", NewRect(100, 100, 60, 60), NewRect(100, 100, 60, 60)},
		{"past left", NewRect(-5, 100, 60, 60), NewRect(0, 100, 60, 60)},
		{"past right", NewRect(790, 100, 60, 60), NewRect(740, 100, 60, 60)},
		{"past top", NewRect(100, -20, 60, 60), NewRect(100, 0, 60, 60)},
		{"past bottom", NewRect(100, 580, 60, 60), NewRect(100, 540, 60, 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.ClampInside(field); got != tt.want {
				t.Errorf("ClampInside = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectAroundCenter(t *testing.T) {
	r := RectAround(400, 540, 60, 60)
	if r.X != 370 || r.Y != 510 {
		t.Fatalf("RectAround top-left = (%v,%v), want (370,510)", r.X, r.Y)
	}
	c := r.Center()
	if c.X() != 400 || c.Y() != 540 {
		t.Errorf("Center = %v, want (400,540)", c)
	}
}

func TestSpatialGridQueryDeduplicates(t *testing.T) {
	g := NewSpatialGrid(800, 600, 100)

	// Spans four cells.
	g.Insert(NewRect(90, 90, 20, 20), 0)
	g.Insert(NewRect(500, 500, 10, 10), 1)
	// Above the field, clamped into the top row.
	g.Insert(NewRect(95, -50, 10, 50), 2)

	var got []int
	g.QueryRect(NewRect(80, 0, 40, 120), func(i int) bool {
		got = append(got, i)
		return false
	})
	sort.Ints(got)

	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("QueryRect = %v, want [0 2]", got)
	}

	// A second query must report the same item again.
	count := 0
	g.QueryRect(NewRect(95, 95, 1, 1), func(i int) bool {
		if i == 0 {
			count++
		}
		return false
	})
	if count != 1 {
		t.Errorf("item 0 reported %d times, want 1", count)
	}
}

func TestSpatialGridClear(t *testing.T) {
	g := NewSpatialGrid(800, 600, 100)
	g.Insert(NewRect(10, 10, 5, 5), 0)
	g.Clear()

	g.QueryRect(NewRect(0, 0, 800, 600), func(i int) bool {
		t.Fatalf("unexpected item %d after Clear", i)
		return true
	})
}
