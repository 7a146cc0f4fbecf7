package layout

import "testing"

var retro = Params{Margin: 12, Padding: 16, VerticalPadding: 32, MinSize: 75, MaxSize: 110}

// bruteForce is the linear reference for ButtonSize.
func bruteForce(m Measurement, count int, p Params) int {
	p = p.normalized()
	if m.Width <= 0 || m.Height <= 0 || count <= 0 {
		return p.MinSize
	}
	for size := p.MaxSize; size >= p.MinSize; size-- {
		if fits(m, count, size, p) {
			return size
		}
	}
	return p.MinSize
}

func TestButtonSize_Unmeasured(t *testing.T) {
	bounds := []Params{
		retro,
		{Margin: 20, Padding: 20, VerticalPadding: 40, MinSize: 64, MaxSize: 96},
		{MinSize: 10, MaxSize: 10},
		{MinSize: 0, MaxSize: 500},
	}
	for _, p := range bounds {
		for _, m := range []Measurement{{0, 1000}, {1000, 0}, {0, 0}} {
			if got := ButtonSize(m, 5, p); got != p.MinSize {
				t.Errorf("ButtonSize(%+v, 5, %+v) = %d, want MinSize %d", m, p, got, p.MinSize)
			}
		}
		if got := ButtonSize(Measurement{1000, 1000}, 0, p); got != p.MinSize {
			t.Errorf("ButtonSize(count=0, %+v) = %d, want MinSize %d", p, got, p.MinSize)
		}
	}
}

func TestButtonSize_SingleItemGetsMax(t *testing.T) {
	if got := ButtonSize(Measurement{1000, 1000}, 1, retro); got != retro.MaxSize {
		t.Errorf("ButtonSize(1000x1000, 1) = %d, want %d", got, retro.MaxSize)
	}
}

func TestButtonSize_OverflowFallsBackToMin(t *testing.T) {
	got := ButtonSize(Measurement{400, 100}, 26, retro)
	if got != retro.MinSize {
		t.Errorf("ButtonSize(400x100, 26) = %d, want MinSize %d", got, retro.MinSize)
	}
}

func TestButtonSize_NarrowContainerSingleColumn(t *testing.T) {
	// Narrower than one minimum button: one column, height allows exactly
	// three rows at MinSize.
	h := 3*(retro.MinSize+retro.Margin) + retro.VerticalPadding
	m := Measurement{Width: 50, Height: h}
	if c := Columns(m.Width, retro.MinSize, retro); c != 1 {
		t.Fatalf("Columns(50) = %d, want 1", c)
	}
	if got := ButtonSize(m, 3, retro); got != retro.MinSize {
		t.Errorf("ButtonSize(narrow, 3) = %d, want %d", got, retro.MinSize)
	}
	// Plenty of height: the single column may grow up to MaxSize.
	if got := ButtonSize(Measurement{Width: 50, Height: 10000}, 3, retro); got != retro.MaxSize {
		t.Errorf("ButtonSize(narrow, tall, 3) = %d, want %d", got, retro.MaxSize)
	}
}

func TestButtonSize_WithinBounds(t *testing.T) {
	for w := 0; w <= 1200; w += 37 {
		for h := 0; h <= 900; h += 41 {
			for count := 0; count <= 30; count++ {
				got := ButtonSize(Measurement{w, h}, count, retro)
				if got < retro.MinSize || got > retro.MaxSize {
					t.Fatalf("ButtonSize(%dx%d, %d) = %d, outside [%d, %d]",
						w, h, count, got, retro.MinSize, retro.MaxSize)
				}
			}
		}
	}
}

func TestButtonSize_MonotoneInCount(t *testing.T) {
	sizes := []Measurement{{320, 480}, {800, 600}, {1024, 300}, {200, 2000}}
	for _, m := range sizes {
		prev := ButtonSize(m, 1, retro)
		for count := 2; count <= 60; count++ {
			got := ButtonSize(m, count, retro)
			if got > prev {
				t.Fatalf("ButtonSize(%+v): count %d gave %d, larger than %d for count %d",
					m, count, got, prev, count-1)
			}
			prev = got
		}
	}
}

func TestButtonSize_MatchesLinearSearch(t *testing.T) {
	params := []Params{
		retro,
		{Margin: 20, Padding: 20, VerticalPadding: 40, MinSize: 64, MaxSize: 96},
		{Margin: 0, Padding: 0, VerticalPadding: 0, MinSize: 1, MaxSize: 300},
	}
	for _, p := range params {
		for w := 50; w <= 1100; w += 53 {
			for h := 50; h <= 1100; h += 59 {
				for _, count := range []int{1, 2, 5, 13, 26} {
					m := Measurement{w, h}
					if got, want := ButtonSize(m, count, p), bruteForce(m, count, p); got != want {
						t.Fatalf("ButtonSize(%+v, %d, %+v) = %d, want %d", m, count, p, got, want)
					}
				}
			}
		}
	}
}

func TestButtonSize_Deterministic(t *testing.T) {
	m := Measurement{777, 555}
	first := ButtonSize(m, 17, retro)
	for i := 0; i < 100; i++ {
		if got := ButtonSize(m, 17, retro); got != first {
			t.Fatalf("call %d: got %d, first call gave %d", i, got, first)
		}
	}
}

func TestButtonSize_SwappedBounds(t *testing.T) {
	p := Params{MinSize: 110, MaxSize: 75}
	got := ButtonSize(Measurement{1000, 1000}, 1, p)
	if got != 110 {
		t.Errorf("ButtonSize with swapped bounds = %d, want 110", got)
	}
}

func TestRows(t *testing.T) {
	tests := []struct{ count, cols, want int }{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{26, 5, 6},
		{3, 0, 3},
	}
	for _, tt := range tests {
		if got := Rows(tt.count, tt.cols); got != tt.want {
			t.Errorf("Rows(%d, %d) = %d, want %d", tt.count, tt.cols, got, tt.want)
		}
	}
}
