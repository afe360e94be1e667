package facematch

import "math"

// MatchThreshold is the maximum Euclidean distance (exclusive) between a
// probe encoding and a known encoding for the two to count as the same
// person, in the units of the mean-color encoding. Fixed, not configurable.
const MatchThreshold = 30.0

// KnownFace is one entry of the known-faces set: the registered name, its
// encoding, and the PNG bytes of the aligned face crop.
type KnownFace struct {
	Name     string
	Encoding []float32
	Image    []byte
}

// Match is a successful nearest-neighbor lookup.
type Match struct {
	Name     string
	Distance float64
}

// EuclideanDistance computes the Euclidean distance between two encodings.
// Mismatched lengths yield the maximum distance so they can never match.
func EuclideanDistance(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.MaxFloat64
	}

	var sum float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// BestMatch finds the known face nearest to the probe encoding. It reports
// a match only when the minimum distance is strictly below MatchThreshold.
// Known faces are scanned in insertion order and the comparison is strict,
// so on an exact distance tie the face registered first wins.
func BestMatch(probe []float32, known []KnownFace) (Match, bool) {
	best := Match{Distance: math.MaxFloat64}
	for _, kf := range known {
		if d := EuclideanDistance(probe, kf.Encoding); d < best.Distance {
			best = Match{Name: kf.Name, Distance: d}
		}
	}

	if best.Distance >= MatchThreshold {
		return Match{}, false
	}
	return best, true
}
