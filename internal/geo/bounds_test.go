package geo

import "testing"

func TestContainsPoint(t *testing.T) {
	bounds := Bounds{MinLat: -23.0, MaxLat: -22.0, MinLon: -48.0, MaxLon: -47.0}

	tests := []struct {
		name  string
		point []float64
		want  bool
	}{
		{"inside", []float64{-22.5, -47.5}, true},
		{"on min_lat edge", []float64{-23.0, -47.5}, true},
		{"on max_lat edge", []float64{-22.0, -47.5}, true},
		{"on min_lon edge", []float64{-22.5, -48.0}, true},
		{"on max_lon edge", []float64{-22.5, -47.0}, true},
		{"corner", []float64{-23.0, -48.0}, true},
		{"below min_lat", []float64{-23.1, -47.5}, false},
		{"above max_lat", []float64{-21.9, -47.5}, false},
		{"west of min_lon", []float64{-22.5, -48.1}, false},
		{"east of max_lon", []float64{-22.5, -46.9}, false},
		{"wrong arity short", []float64{-22.5}, false},
		{"wrong arity long", []float64{-22.5, -47.5, 1.0}, false},
		{"empty", []float64{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bounds.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestIntersectsPolygon(t *testing.T) {
	bounds := Bounds{MinLat: -23.0, MaxLat: -22.0, MinLon: -48.0, MaxLon: -47.0}

	tests := []struct {
		name    string
		polygon [][]float64
		want    bool
	}{
		{
			"one vertex inside",
			[][]float64{{-25.0, -50.0}, {-22.5, -47.5}, {-25.0, -45.0}},
			true,
		},
		{
			"all vertices outside",
			[][]float64{{-25.0, -50.0}, {-25.0, -45.0}, {-26.0, -47.0}},
			false,
		},
		{
			// Known approximation: a polygon enclosing the whole box has
			// no vertex inside it and is not detected.
			"polygon enclosing the box is missed",
			[][]float64{{-30.0, -55.0}, {-30.0, -40.0}, {-15.0, -40.0}, {-15.0, -55.0}},
			false,
		},
		{"empty polygon", [][]float64{}, false},
		{"malformed vertex skipped", [][]float64{{-22.5}, {-22.5, -47.5}}, true},
		{"only malformed vertices", [][]float64{{-22.5}, {-22.5, -47.5, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bounds.IntersectsPolygon(tt.polygon); got != tt.want {
				t.Errorf("IntersectsPolygon(%v) = %v, want %v", tt.polygon, got, tt.want)
			}
		})
	}
}
