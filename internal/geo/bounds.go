package geo

// Bounds is a geographic bounding box. Callers must validate
// MinLat < MaxLat and MinLon < MaxLon before using it.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// ContainsPoint reports whether a [latitude, longitude] pair lies inside
// the box, inclusive of its edges. A pair with the wrong arity never
// matches.
func (b Bounds) ContainsPoint(point []float64) bool {
	if len(point) != 2 {
		return false
	}
	return point[0] >= b.MinLat && point[0] <= b.MaxLat &&
		point[1] >= b.MinLon && point[1] <= b.MaxLon
}

// IntersectsPolygon reports whether any vertex of the polygon lies inside
// the box. This is a vertex-containment test, not true polygon/rectangle
// intersection: a polygon that fully encloses the box without a vertex
// inside it is not detected.
func (b Bounds) IntersectsPolygon(polygon [][]float64) bool {
	for _, vertex := range polygon {
		if b.ContainsPoint(vertex) {
			return true
		}
	}
	return false
}
