package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KnownCities(t *testing.T) {
	cat := NewCatalog("/data", nil, map[string]string{"Chicago": "chicago_stations.csv"})

	testCases := []struct {
		name         string
		city         string
		expectedPath string
		hasStations  bool
	}{
		{name: "chicago", city: "chicago", expectedPath: "/data/chicago.csv", hasStations: true},
		{name: "new york mixed case", city: "  New York ", expectedPath: "/data/new_york_city.csv"},
		{name: "washington", city: "WASHINGTON", expectedPath: "/data/washington.csv"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resource, err := cat.Resolve(tc.city)
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tc.expectedPath), resource.Path)
			assert.Equal(t, tc.hasStations, resource.HasStations())
		})
	}
}

func TestResolve_UnknownCity(t *testing.T) {
	cat := NewCatalog("", nil, nil)

	_, err := cat.Resolve("montreal")

	require.ErrorIs(t, err, ErrUnknownCity)
	assert.Contains(t, err.Error(), "montreal")
}

func TestNewCatalog_OverridesAndIgnoresUnknownEntries(t *testing.T) {
	cat := NewCatalog("", map[string]string{"washington": "/abs/dc.csv", "toronto": "toronto.csv"}, nil)

	resource, err := cat.Resolve("washington")
	require.NoError(t, err)
	assert.Equal(t, "/abs/dc.csv", resource.Path)

	_, err = cat.Resolve("toronto")
	assert.ErrorIs(t, err, ErrUnknownCity)
	assert.Equal(t, []string{"chicago", "new york", "washington"}, cat.Cities())
}
