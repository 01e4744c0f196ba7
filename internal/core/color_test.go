package core

import "testing"

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want [3]uint8
	}{
		{ColorRed, [3]uint8{220, 50, 50}},
		{ColorYellow, [3]uint8{240, 220, 80}},
		{ColorGray, [3]uint8{100, 100, 110}},
		{Color(250), [3]uint8{230, 230, 230}},
	}

	for _, tt := range tests {
		got := tt.c.RGBA()
		if [3]uint8{got.R, got.G, got.B} != tt.want || got.A != 255 {
			t.Errorf("Color(%d).RGBA() = %v, want %v", tt.c, got, tt.want)
		}
	}
}
