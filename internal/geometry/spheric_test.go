package geometry_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/geocoord/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSpheric(t *testing.T, f *geometry.Factory, radius, polar, azimuth float64) *geometry.Spheric {
	t.Helper()
	s, err := f.NewSpheric(radius, polar, azimuth)
	require.NoError(t, err)
	return s
}

func TestNewSpheric(t *testing.T) {
	f := newFactory(t)

	t.Run("stores parameters", func(t *testing.T) {
		s := mustSpheric(t, f, 5.4, 38, 22)

		assert.InDelta(t, 5.4, s.Radius(), s.Epsilon())
		assert.InDelta(t, 38.0, s.PolarAngle(), s.Epsilon())
		assert.InDelta(t, 22.0, s.AzimuthalAngle(), s.Epsilon())
		assert.Equal(t, 1e-5, s.Epsilon())
		assert.Equal(t, "spheric(r=5.4, polar=38°, azimuth=22°)", s.String())
	})

	t.Run("accepts lower bounds", func(t *testing.T) {
		_, err := f.NewSpheric(0, 0, 0)
		require.NoError(t, err)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		tests := []struct {
			name                   string
			radius, polar, azimuth float64
		}{
			{name: "negative radius", radius: -1, polar: 2, azimuth: 3},
			{name: "exclusive upper bounds", radius: 0, polar: 180, azimuth: 360},
			{name: "negative polar angle", radius: 1, polar: -45, azimuth: 0},
			{name: "azimuth above a full turn", radius: 1, polar: 45, azimuth: 550},
			{name: "infinite radius", radius: math.Inf(1)},
			{name: "NaN polar angle", radius: 1, polar: math.NaN()},
			{name: "NaN azimuth", radius: 1, azimuth: math.NaN()},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s, err := f.NewSpheric(tt.radius, tt.polar, tt.azimuth)

				require.Nil(t, s)
				require.ErrorIs(t, err, geometry.ErrInvalidArgument)
			})
		}
	})

	t.Run("reports both exclusive bounds", func(t *testing.T) {
		_, err := f.NewSpheric(0, 180, 360)

		require.ErrorIs(t, err, geometry.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "polar angle must be in [0, 180)")
		assert.Contains(t, err.Error(), "azimuthal angle must be in [0, 360)")
	})
}

func TestSpheric_AsCartesian(t *testing.T) {
	f := newFactory(t)

	tests := []struct {
		name                   string
		radius, polar, azimuth float64
		x, y, z                float64
	}{
		{name: "first octant", radius: 5.4, polar: 38, azimuth: 22,
			x: 3.082489451, y: 1.245406579, z: 4.255258069},
		{name: "opposite octant", radius: 3.4, polar: 135, azimuth: 190,
			x: -2.367638417, y: -0.417478533, z: -2.404163056},
		{name: "origin", radius: 0, polar: 90, azimuth: 90},
		{name: "north pole", radius: 2, polar: 0, azimuth: 123, z: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := mustSpheric(t, f, tt.radius, tt.polar, tt.azimuth).AsCartesian()

			require.NoError(t, err)
			assert.InDelta(t, tt.x, c.X(), c.Epsilon())
			assert.InDelta(t, tt.y, c.Y(), c.Epsilon())
			assert.InDelta(t, tt.z, c.Z(), c.Epsilon())
		})
	}
}

func TestSpheric_AsSpheric(t *testing.T) {
	f := newFactory(t)
	s := mustSpheric(t, f, 5.4, 38, 22)

	same, err := s.AsSpheric()

	require.NoError(t, err)
	assert.Same(t, s, same)
}

func TestSpheric_IsEqual(t *testing.T) {
	f := newFactory(t)
	origin := mustSpheric(t, f, 0, 90, 90)
	point := mustSpheric(t, f, 3, 4, 5)

	tests := []struct {
		name  string
		a, b  *geometry.Spheric
		equal bool
	}{
		{name: "same instance", a: origin, b: origin, equal: true},
		{name: "same parameters", a: point, b: mustSpheric(t, f, 3, 4, 5), equal: true},
		{name: "different points", a: origin, b: point, equal: false},
		{name: "different radius", a: point, b: mustSpheric(t, f, 3.1, 4, 5), equal: false},
		{name: "different polar angle", a: point, b: mustSpheric(t, f, 3, 4.1, 5), equal: false},
		{name: "origin ignores angles", a: origin, b: mustSpheric(t, f, 0, 10, 300), equal: true},
		{name: "near origin ignores angles", a: mustSpheric(t, f, 0.000001, 170, 20),
			b: mustSpheric(t, f, 0, 100, 200), equal: true},
		{name: "azimuth wraps past a full turn", a: mustSpheric(t, f, 1, 45, 359.999999),
			b: mustSpheric(t, f, 1, 45, 0), equal: true},
		{name: "negative azimuth reduced into range", a: mustSpheric(t, f, 1, 45, 359.99999),
			b: mustSpheric(t, f, 1, 45, geometry.PositiveModulus(-0.00001, 360)), equal: true},
		{name: "negative azimuth shifted by a full turn", a: mustSpheric(t, f, 1, 45, 359.99999),
			b: mustSpheric(t, f, 1, 45, -0.00001+360), equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab, err := tt.a.IsEqual(tt.b)
			require.NoError(t, err)
			ba, err := tt.b.IsEqual(tt.a)
			require.NoError(t, err)

			assert.Equal(t, tt.equal, ab)
			assert.Equal(t, ab, ba)
		})
	}

	t.Run("against Cartesian peers", func(t *testing.T) {
		c, err := point.AsCartesian()
		require.NoError(t, err)

		eq, err := point.IsEqual(c)
		require.NoError(t, err)
		assert.True(t, eq)

		eq, err = origin.IsEqual(mustCartesian(t, f, 0, 0, 0))
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("against a Cartesian peer on the south pole", func(t *testing.T) {
		eq, err := mustSpheric(t, f, 5, 179.9999999999, 0).IsEqual(mustCartesian(t, f, 0, 0, -5))
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("nil peer", func(t *testing.T) {
		_, err := point.IsEqual(nil)
		require.ErrorIs(t, err, geometry.ErrInvalidArgument)
	})
}

func TestSpheric_CartesianDistance(t *testing.T) {
	f := newFactory(t)
	origin := mustSpheric(t, f, 0, 90, 90)
	s1 := mustSpheric(t, f, 5.4, 38, 22)
	s2 := mustSpheric(t, f, 3.4, 135, 190)

	tests := []struct {
		name string
		a, b *geometry.Spheric
		want float64
	}{
		{name: "s1 to s2", a: s1, b: s2, want: 8.7645291032},
		{name: "s2 to s1", a: s2, b: s1, want: 8.7645291032},
		{name: "s2 to origin", a: s2, b: origin, want: 3.4},
		{name: "origin to s2", a: origin, b: s2, want: 3.4},
		{name: "self", a: s1, b: s1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.a.CartesianDistance(tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, d, tt.a.Epsilon())
		})
	}
}

func TestSpheric_CentralAngle(t *testing.T) {
	f := newFactory(t)
	origin := mustSpheric(t, f, 0, 90, 90)
	s1 := mustSpheric(t, f, 5.4, 38, 22)

	angle, err := origin.CentralAngle(s1)
	require.NoError(t, err)
	assert.InDelta(t, 1.1868238, angle, s1.Epsilon())

	angle, err = s1.CentralAngle(origin)
	require.NoError(t, err)
	assert.InDelta(t, 1.1868238, angle, s1.Epsilon())

	angle, err = s1.CentralAngle(s1)
	require.NoError(t, err)
	assert.Zero(t, angle)

	_, err = s1.CentralAngle(nil)
	require.ErrorIs(t, err, geometry.ErrInvalidArgument)
}
