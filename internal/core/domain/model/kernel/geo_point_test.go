package kernel_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"valid_point", 37.5665, 126.9780, false},
		{"valid_boundaries", 90, 180, false},
		{"valid_negative_boundaries", -90, -180, false},
		{"zero_zero_is_valid", 0, 0, false},
		{"latitude_too_high", 90.0001, 0, true},
		{"latitude_too_low", -90.0001, 0, true},
		{"longitude_too_high", 0, 180.0001, true},
		{"longitude_too_low", 0, -180.0001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			require.NoError(t, point.Validate())
			assert.InDelta(t, tt.latitude, point.Latitude(), 1e-9)
			assert.InDelta(t, tt.longitude, point.Longitude(), 1e-9)
		})
	}
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var point kernel.GeoPoint
		require.Error(t, point.Validate())
	})

	t.Run("constructed_point_is_valid", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(1, 1)
		require.NoError(t, err)
		require.NoError(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(37.5665, 126.9780)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(37.5665, 126.9780)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(35.1796, 129.0756)
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	t.Run("zero_value_fails", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := a.IsEqual(zero)
		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	t.Run("distance_to_self_is_zero", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(37.5665, 126.9780)
		require.NoError(t, err)

		meters, err := point.DistanceTo(point)
		require.NoError(t, err)
		assert.InDelta(t, 0, meters, 1e-6)
	})

	t.Run("one_degree_of_latitude", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(1, 0)
		require.NoError(t, err)

		meters, err := a.DistanceTo(b)
		require.NoError(t, err)
		// pi * R / 180 with R = 6371 km
		assert.InDelta(t, 111194.93, meters, 0.5)
	})

	t.Run("distance_is_symmetric", func(t *testing.T) {
		seoul, err := kernel.NewGeoPoint(37.5665, 126.9780)
		require.NoError(t, err)
		busan, err := kernel.NewGeoPoint(35.1796, 129.0756)
		require.NoError(t, err)

		forward, err := seoul.DistanceTo(busan)
		require.NoError(t, err)
		backward, err := busan.DistanceTo(seoul)
		require.NoError(t, err)

		assert.InDelta(t, forward, backward, 1e-6)
		// Known distance is roughly 325 km
		assert.InDelta(t, 325000, forward, 2000)
	})

	t.Run("three_kilometer_threshold", func(t *testing.T) {
		// 1 degree of latitude is ~111194.93 m, so 3000 m is ~0.0269797 degrees.
		origin, err := kernel.NewGeoPoint(37.5, 127.0)
		require.NoError(t, err)

		within, err := kernel.NewGeoPoint(37.5+2999.0/111194.93, 127.0)
		require.NoError(t, err)
		beyond, err := kernel.NewGeoPoint(37.5+3001.0/111194.93, 127.0)
		require.NoError(t, err)

		near, err := origin.DistanceTo(within)
		require.NoError(t, err)
		assert.Less(t, near, 3000.0)

		far, err := origin.DistanceTo(beyond)
		require.NoError(t, err)
		assert.Greater(t, far, 3000.0)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(1, 1)
		require.NoError(t, err)

		var zero kernel.GeoPoint
		_, err = point.DistanceTo(zero)
		require.Error(t, err)
	})
}
