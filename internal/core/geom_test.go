package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	if r.CenterX() != 15 {
		t.Errorf("CenterX() = %d, expected 15", r.CenterX())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRectCenterX(t *testing.T) {
	r := NewRect(376, 540, 48, 28)
	if r.CenterX() != 400 {
		t.Errorf("CenterX() = %d, expected 400", r.CenterX())
	}
}

func TestRectFSnapsDown(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		wantY int
	}{
		{"whole", 10.0, 10},
		{"fraction", 10.7, 10},
		{"negative fraction", -24.5, -25},
		{"spawn line", -26.0, -26},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := RectF{X: 100, Y: tc.y, W: 44, H: 26}.Rect()
			if r.Y != tc.wantY {
				t.Errorf("Rect().Y = %d, expected %d", r.Y, tc.wantY)
			}
			if r.W != 44 || r.H != 26 {
				t.Errorf("Rect() size = %dx%d, expected 44x26", r.W, r.H)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	enemy := RectF{X: 100, Y: -26, W: 44, H: 26}.Rect()
	if enemy.Intersects(NewRect(120, 0, 4, 10)) {
		t.Error("enemy above the top edge should not touch a bullet at y=0")
	}
	if !enemy.Intersects(NewRect(120, -5, 4, 10)) {
		t.Error("bullet overlapping the enemy's lower edge should intersect")
	}
}

func TestScaleTo(t *testing.T) {
	tests := []struct {
		v, from, to, expected int
	}{
		{0, 800, 80, 0},
		{400, 800, 80, 40},
		{799, 800, 80, 79},
		{-26, 600, 23, -1},
		{100, 0, 80, 0},
	}

	for _, tc := range tests {
		result := ScaleTo(tc.v, tc.from, tc.to)
		if result != tc.expected {
			t.Errorf("ScaleTo(%d, %d, %d) = %d, expected %d", tc.v, tc.from, tc.to, result, tc.expected)
		}
	}
}
