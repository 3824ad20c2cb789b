package glyphs

import "testing"

func TestShelfAllocator_Basic(t *testing.T) {
	a := NewShelfAllocator(100, 100, 2)

	x, y, ok := a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate first cell")
	}
	if x != 0 || y != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", x, y)
	}

	x, y, ok = a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate second cell")
	}
	if x != 22 || y != 0 { // 20 + 2 padding
		t.Errorf("expected (22,0), got (%d,%d)", x, y)
	}
}

func TestShelfAllocator_NewShelf(t *testing.T) {
	a := NewShelfAllocator(50, 100, 2)

	_, y1, ok := a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate first cell")
	}

	_, y2, ok := a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate second cell")
	}
	if y2 != y1 {
		t.Errorf("expected same shelf, got y1=%d, y2=%d", y1, y2)
	}

	x3, y3, ok := a.Allocate(20, 20)
	if !ok {
		t.Fatal("failed to allocate third cell")
	}
	if y3 != 22 {
		t.Errorf("expected new shelf at y=22, got %d", y3)
	}
	if x3 != 0 {
		t.Errorf("expected x=0 for new shelf, got %d", x3)
	}
}

func TestShelfAllocator_ExactFit(t *testing.T) {
	a := NewShelfAllocator(64, 64, 0)

	count := 0
	for {
		_, _, ok := a.Allocate(16, 16)
		if !ok {
			break
		}
		count++
		if count > 100 {
			t.Fatal("allocator never filled up")
		}
	}

	if count != 16 {
		t.Errorf("expected 16 allocations, got %d", count)
	}
	if a.Utilization() != 1 {
		t.Errorf("expected full utilization, got %f", a.Utilization())
	}
}

func TestShelfAllocator_TooWide(t *testing.T) {
	a := NewShelfAllocator(32, 32, 0)

	if _, _, ok := a.Allocate(33, 1); ok {
		t.Error("allocated an item wider than the allocator")
	}
	if _, _, ok := a.Allocate(1, 33); ok {
		t.Error("allocated an item taller than the allocator")
	}
	if a.ShelfCount() != 0 {
		t.Errorf("failed allocations created %d shelves", a.ShelfCount())
	}
}

func TestShelfAllocator_ExtendLastShelf(t *testing.T) {
	a := NewShelfAllocator(100, 100, 0)

	a.Allocate(10, 10)
	x, y, ok := a.Allocate(10, 30)
	if !ok {
		t.Fatal("failed to allocate taller cell")
	}
	if x != 10 || y != 0 {
		t.Errorf("expected taller cell on first shelf at (10,0), got (%d,%d)", x, y)
	}

	_, y, _ = a.Allocate(100, 5)
	if y != 30 {
		t.Errorf("expected next shelf below extended shelf at y=30, got %d", y)
	}
}

func TestShelfAllocator_UsedArea(t *testing.T) {
	a := NewShelfAllocator(100, 100, 2)

	a.Allocate(20, 20)
	a.Allocate(20, 20)

	if a.ShelfCount() != 1 {
		t.Errorf("expected 1 shelf, got %d", a.ShelfCount())
	}
	if a.UsedArea() != 800 {
		t.Errorf("expected used area 800, got %d", a.UsedArea())
	}
	if a.Utilization() != 0.08 {
		t.Errorf("expected utilization 0.08, got %f", a.Utilization())
	}
}
