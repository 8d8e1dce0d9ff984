package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gloriatan/ANI/internal/catalog"
)

const sampleJSON = `{
	"day_passes": {"Tokyo": 1600},
	"pilgrimages": [
		{
			"anime_name": "君の名は。",
			"anime_name_en": "Your Name.",
			"image_url": "https://images.example.com/your-name.jpg",
			"locations": [
				{
					"name": "Suga Shrine",
					"city": "Tokyo",
					"area": "Yotsuya",
					"transport_cost": 170,
					"entry_fee": 0,
					"location_type": "Shrine",
					"description": "The stairway from the final scene."
				},
				{
					"name": "Docomo Tower",
					"city": "Tokyo",
					"area": "Shinjuku"
				}
			]
		}
	]
}`

func TestLoad(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(sampleJSON), discardLogger())

	require.NoError(t, err)
	require.True(t, c.HasCity("Tokyo"))

	locs := c.LocationsFor("Tokyo", []string{"君の名は。"})
	require.Len(t, locs, 2)
	assert.Equal(t, 170, locs[0].TransportCost)
	assert.Equal(t, "Shrine", locs[0].LocationType)

	price, ok := c.DayPassPrice("Tokyo")
	require.True(t, ok)
	assert.Equal(t, 1600, price)
}

// TestLoad_MissingNumericFieldsDefaultToZero pins the data-integrity fix:
// a record without transport_cost or entry_fee loads as 0 at the boundary,
// so no request-time arithmetic can hit a missing field.
func TestLoad_MissingNumericFieldsDefaultToZero(t *testing.T) {
	c, err := catalog.Load(strings.NewReader(sampleJSON), discardLogger())
	require.NoError(t, err)

	locs := c.LocationsFor("Tokyo", []string{"君の名は。"})
	require.Len(t, locs, 2)
	assert.Zero(t, locs[1].TransportCost)
	assert.Zero(t, locs[1].EntryFee)
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := catalog.Load(strings.NewReader(`{"pilgrimages": [`), discardLogger())

	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := catalog.LoadFile("does/not/exist.json", discardLogger())

	assert.Error(t, err)
}

// TestLoadEmbedded sanity-checks the dataset compiled into the binary: it
// must parse, contain the preferred cities, and carry a day-pass table.
func TestLoadEmbedded(t *testing.T) {
	c, err := catalog.LoadEmbedded(discardLogger())

	require.NoError(t, err)
	assert.True(t, c.HasCity("Tokyo"))
	assert.True(t, c.HasCity("Kamakura"))
	assert.NotEmpty(t, c.AnimeForCity("Tokyo"))

	price, ok := c.DayPassPrice("Tokyo")
	require.True(t, ok)
	assert.Positive(t, price)
}
