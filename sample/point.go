package sample

import (
	"math"
	"math/rand/v2"
)

// Extent bounds generated coordinates to [0, Extent).
const Extent = 1000

// Point is a 2-D point with a unique id. Generated points have distinct ids,
// so == identifies a point even when two share coordinates.
type Point struct {
	ID int
	X  int
	Y  int
}

// Distance returns the Euclidean distance between a and b.
//
// The square root matters: squared Euclidean distance violates the triangle
// inequality and cannot drive vantage-point pruning.
func Distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Generate returns n points with ids 0..n-1 and coordinates drawn uniformly
// from [0, Extent). A nil rng uses a randomly seeded generator.
func Generate(n int, rng *rand.Rand) []Point {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{ID: i, X: rng.IntN(Extent), Y: rng.IntN(Extent)}
	}
	return points
}
