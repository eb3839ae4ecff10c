package spline

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

const tolerance = 1e-9

var square = []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

func randomPoints(r *rand.Rand, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		pts[i] = vec.Vec2{X: r.Float64()*800 - 400, Y: r.Float64()*600 - 300}
	}
	return pts
}

func near(a, b vec.Vec2) bool {
	return a.Sub(b).Length() < tolerance
}

func TestTooFewPoints(t *testing.T) {
	for _, pts := range [][]vec.Vec2{nil, {}, {{X: 3, Y: 4}}} {
		assert.Empty(t, BSpline(pts))
		assert.Empty(t, Cardinal(pts))
		assert.Empty(t, Bezier(pts))
	}
	assert.Empty(t, Linestrip(nil))
	assert.Equal(t, []vec.Vec2{{X: 3, Y: 4}}, Linestrip([]vec.Vec2{{X: 3, Y: 4}}))
}

func TestBezierOnlyAtFourPoints(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n <= 9; n++ {
		got := Bezier(randomPoints(r, n))
		if n == 4 {
			assert.Len(t, got, SamplesPerSegment+1)
		} else {
			assert.Empty(t, got, "%d points", n)
		}
	}
}

func TestBezierShape(t *testing.T) {
	got := Bezier(square)
	require.Len(t, got, 101)
	assert.Equal(t, square[0], got[0])
	assert.True(t, near(square[3], got[100]), "end %v", got[100])

	// B(1/2) = (p0 + 3p1 + 3p2 + p3) / 8
	mid := square[0].Add(square[1].Mul(3)).Add(square[2].Mul(3)).Add(square[3]).Mul(1.0 / 8)
	assert.True(t, near(mid, got[50]), "mid %v, want %v", got[50], mid)
}

func TestSampleCount(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for n := 2; n <= 12; n++ {
		pts := randomPoints(r, n)
		want := SamplesPerSegment*(n-1) + 1
		assert.Len(t, BSpline(pts), want, "bspline with %d points", n)
		assert.Len(t, Cardinal(pts), want, "cardinal with %d points", n)
		assert.Len(t, Linestrip(pts), n)
	}
}

func TestCardinalInterpolates(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for n := 2; n <= 10; n++ {
		pts := randomPoints(r, n)
		samples := Cardinal(pts)
		for i, p := range pts {
			found := false
			for _, s := range samples {
				if near(p, s) {
					found = true
					break
				}
			}
			assert.True(t, found, "control point %d of %d not on curve", i, n)
		}
	}
}

func TestBSplineEndpoints(t *testing.T) {
	got := BSpline(square)
	require.NotEmpty(t, got)
	assert.True(t, near(square[0], got[0]), "start %v", got[0])
	assert.True(t, near(square[3], got[len(got)-1]), "end %v", got[len(got)-1])

	// Interior control points are only approximated.
	for _, s := range got {
		assert.False(t, near(square[1], s))
	}
}

func TestTwoPointsAreStraight(t *testing.T) {
	pts := []vec.Vec2{{X: -5, Y: 1}, {X: 15, Y: 1}}
	for _, kind := range []Kind{KindBSpline, KindCardinal} {
		got := Tessellate(kind, pts)
		require.Len(t, got, SamplesPerSegment+1, kind.String())
		for _, s := range got {
			assert.InDelta(t, 1, s.Y, tolerance, kind.String())
			assert.GreaterOrEqual(t, s.X, -5-tolerance)
			assert.LessOrEqual(t, s.X, 15+tolerance)
		}
	}
}

func TestIdempotentAndPure(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 17} {
		pts := randomPoints(r, n)
		orig := slices.Clone(pts)
		for _, kind := range Kinds {
			first := Tessellate(kind, pts)
			second := Tessellate(kind, pts)
			if d := cmp.Diff(first, second); d != "" {
				t.Errorf("%s with %d points not idempotent:\n%s", kind, n, d)
			}
			if d := cmp.Diff(orig, pts); d != "" {
				t.Fatalf("%s mutated its input:\n%s", kind, d)
			}
		}
	}
}

func TestLinestripCopies(t *testing.T) {
	pts := slices.Clone(square)
	got := Linestrip(pts)
	got[0] = vec.Vec2{X: 99, Y: 99}
	assert.Equal(t, square[0], pts[0])
}

func TestSegmentsJoin(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	pts := randomPoints(r, 6)
	ext := extend(pts)
	for _, m := range []*charMatrix{&bsplineMatrix, &catmullRomMatrix} {
		c := windows(m, ext)
		require.Len(t, c, len(pts)-1)
		for i := 1; i < len(c); i++ {
			a, b := c[i-1].eval(1), c[i].eval(0)
			if d := cmp.Diff(a, b, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Errorf("segments %d and %d do not meet:\n%s", i-1, i, d)
			}
		}
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "linestrip", KindLinestrip.String())
	assert.Equal(t, "bezier", KindBezier.String())
	assert.Equal(t, "unknown", Kind(42).String())
	assert.Nil(t, Tessellate(Kind(42), square))
}
