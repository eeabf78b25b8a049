package utils

import (
	"math"
	"testing"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	d := HaversineDistance(19.0760, 72.8777, 19.0760, 72.8777)
	if d != 0 {
		t.Errorf("distance between identical points = %f, want 0", d)
	}
}

func TestHaversineDistance_KnownDistances(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantMeters             float64
		tolerance              float64
	}{
		// One degree of latitude is ~111.2 km everywhere.
		{"one degree latitude", 0, 0, 1, 0, 111195, 100},
		// Mumbai CST to Gateway of India, roughly 2.3 km.
		{"mumbai short hop", 18.9398, 72.8355, 18.9220, 72.8347, 1980, 100},
		// London to Paris, roughly 344 km.
		{"london to paris", 51.5074, -0.1278, 48.8566, 2.3522, 343500, 2000},
	}
	for _, c := range cases {
		got := HaversineDistance(c.lat1, c.lon1, c.lat2, c.lon2)
		if math.Abs(got-c.wantMeters) > c.tolerance {
			t.Errorf("%s: distance = %f, want %f +/- %f", c.name, got, c.wantMeters, c.tolerance)
		}
	}
}

func TestHaversineDistance_Symmetry(t *testing.T) {
	a := HaversineDistance(19.0760, 72.8777, 28.7041, 77.1025)
	b := HaversineDistance(28.7041, 77.1025, 19.0760, 72.8777)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("distance is not symmetric: %f vs %f", a, b)
	}
}
