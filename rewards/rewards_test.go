package rewards

import "testing"

func TestPointsForValue(t *testing.T) {
	cases := []struct {
		value float64
		want  int
	}{
		{0.29, 29}, // 0.29/0.01 floats to 28.999...; must not truncate
		{0.01, 1},
		{1.00, 100},
		{12.34, 1234},
		{0, 0},
	}
	for _, tc := range cases {
		if got := PointsForValue(tc.value); got != tc.want {
			t.Errorf("PointsForValue(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}
