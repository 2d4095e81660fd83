package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

// destination walks distance meters from origin along bearing (degrees) on the sphere.
func destination(origin orb.Point, bearing, distance float64) orb.Point {
	d := distance / EarthRadiusMeters
	b := toRadians(bearing)
	lat1 := toRadians(origin.Lat())
	lng1 := toRadians(origin.Lon())

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(b))
	lng2 := lng1 + math.Atan2(math.Sin(b)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	lng := math.Mod(lng2*180/math.Pi+540, 360) - 180

	return orb.Point{lng, lat2 * 180 / math.Pi}
}

func TestDistance_SymmetryAndIdentity(t *testing.T) {
	t.Parallel()

	points := []orb.Point{
		{51.3890, 35.6892},
		{51.4000, 35.7000},
		{-0.1276, 51.5072},
		{139.6917, 35.6895},
		{0, 0},
		{-179.9, -89.5},
	}

	for _, a := range points {
		assert.Zero(t, Distance(a, a))
		for _, b := range points {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-6)
		}
	}
}

func TestDistance_KnownValue(t *testing.T) {
	t.Parallel()

	d := Distance(orb.Point{51.3890, 35.6892}, orb.Point{51.4000, 35.7000})

	assert.Greater(t, d, 1350.0)
	assert.Less(t, d, 1450.0)
}

func TestDistance_NaNPropagates(t *testing.T) {
	t.Parallel()

	d := Distance(orb.Point{math.NaN(), 35}, orb.Point{51, 35})
	assert.True(t, math.IsNaN(d))
}

func TestBoundingBox_ContainsCircle(t *testing.T) {
	t.Parallel()

	centers := []orb.Point{
		{51.3890, 35.6892},
		{0, 0},
		{-73.9857, 40.7484},
		{18.0686, 59.3293},
		{-70.6693, -33.4489},
		{25.0, 70.0},
		{10, 80},
		{-120, -85},
		{60, 88},
		{0, 89.95},
	}
	radii := []float64{0, 1, 50, 200, 1000, 5000, 10000, 25000, 200000}

	for _, c := range centers {
		for _, r := range radii {
			box := BoundingBox(c, r)
			assert.True(t, box.Contains(c))
			if r == 0 {
				continue
			}
			for bearing := 0.0; bearing < 360; bearing += 7.5 {
				p := destination(c, bearing, r*0.999)
				if !assert.LessOrEqual(t, Distance(c, p), r+1e-6) {
					continue
				}
				assert.Truef(t, box.Contains(p), "center=%v r=%v bearing=%v point=%v box=%v", c, r, bearing, p, box)
			}
		}
	}
}

func TestBoundingBox_Deltas(t *testing.T) {
	t.Parallel()

	box := BoundingBox(orb.Point{51.0, 0}, 111000)

	assert.InDelta(t, -1.0, box.Min.Lat(), 1e-9)
	assert.InDelta(t, 1.0, box.Max.Lat(), 1e-9)
	assert.InDelta(t, 50.0, box.Min.Lon(), 1e-9)
	assert.InDelta(t, 52.0, box.Max.Lon(), 1e-9)
}

func TestBoundingBox_Poles(t *testing.T) {
	t.Parallel()

	box := BoundingBox(orb.Point{10, 90}, 1000)

	assert.InDelta(t, 90.0, box.Max.Lat(), 1e-9)
	assert.Less(t, box.Min.Lat(), 90.0)
	assert.Equal(t, -180.0, box.Min.Lon())
	assert.Equal(t, 180.0, box.Max.Lon())

	south := BoundingBox(orb.Point{10, -89.9999}, 5000)
	assert.Equal(t, -90.0, south.Min.Lat())

	// The circle around (0, 89.95) crosses the pole onto the far meridian.
	c := orb.Point{0, 89.95}
	near := BoundingBox(c, 10000)
	assert.Equal(t, -180.0, near.Min.Lon())
	assert.Equal(t, 180.0, near.Max.Lon())
	p := orb.Point{180, 89.97}
	assert.Less(t, Distance(c, p), 10000.0)
	assert.True(t, near.Contains(p))
}

func TestBoundingBox_HighLatitudes(t *testing.T) {
	t.Parallel()

	for lat := 60.0; lat <= 88; lat++ {
		for _, r := range []float64{10000, 50000, 100000, 200000} {
			c := orb.Point{10, lat}
			box := BoundingBox(c, r)
			for bearing := 0.0; bearing < 360; bearing++ {
				p := destination(c, bearing, r*0.9999)
				assert.Truef(t, box.Contains(p), "center=%v r=%v bearing=%v point=%v box=%v", c, r, bearing, p, box)
			}
		}
	}

	c := orb.Point{10, 80}
	box := BoundingBox(c, 200000)
	p := destination(c, 77, 199980)
	assert.True(t, box.Contains(p))
	assert.Greater(t, box.Max.Lon()-c.Lon(), 200000/(MetersPerDegree*math.Cos(toRadians(80))))
}

func TestBoundingBox_Antimeridian(t *testing.T) {
	t.Parallel()

	c := orb.Point{179.99, 10}
	box := BoundingBox(c, 5000)

	assert.Equal(t, -180.0, box.Min.Lon())
	assert.Equal(t, 180.0, box.Max.Lon())
	assert.True(t, box.Contains(destination(c, 90, 4000)))
}

func TestRound(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 123.5, Round(123.46, 1), 1e-9)
	assert.InDelta(t, 0.12, Round(0.1249, 2), 1e-9)
	assert.InDelta(t, 10.0, Round(9.96, 1), 1e-9)
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid(orb.Point{51.4, 35.7}))
	assert.False(t, Valid(orb.Point{200, 35.7}))
	assert.False(t, Valid(orb.Point{51.4, -91}))
	assert.False(t, Valid(orb.Point{math.NaN(), 0}))
}
