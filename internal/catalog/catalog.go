// Package catalog holds the read-only snapshot of anime pilgrimage data.
// The snapshot is constructed once at process start (from the embedded JSON
// dataset, a JSON file, or Postgres) and passed by reference into the planner;
// nothing mutates it afterwards, so concurrent readers never conflict.
package catalog

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/gloriatan/ANI/internal/domain"
)

// Anime groups the pilgrimage locations featured in one series.
type Anime struct {
	Name      string            `json:"anime_name"`
	NameEN    string            `json:"anime_name_en"`
	ImageURL  string            `json:"image_url,omitempty"`
	SongURL   string            `json:"song_url,omitempty"`
	Locations []domain.Location `json:"locations"`
}

// CityInfo is a city name plus its decorative icon, as served by /api/cities.
type CityInfo struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// AnimeInfo is the per-city anime listing entry, without locations.
type AnimeInfo struct {
	Name     string `json:"anime_name"`
	NameEN   string `json:"anime_name_en"`
	ImageURL string `json:"image_url,omitempty"`
	SongURL  string `json:"song_url,omitempty"`
}

// Catalog is the immutable snapshot. Construct it with one of the loaders;
// the zero value is an empty but usable catalog.
type Catalog struct {
	pilgrimages []Anime

	// passes maps lowercased city name → flat day-pass price in yen.
	// Absence means no pass is sold for that city.
	passes map[string]int
}

// preferredCityOrder lists cities shown first, in this order, for a stable
// and familiar UI. Remaining cities follow alphabetically.
var preferredCityOrder = []string{"Tokyo", "Kyoto", "Osaka", "Nara", "Kamakura", "Hokkaido", "Uji"}

// cityIcons maps city names to their decorative icons. Unknown cities get 📍.
var cityIcons = map[string]string{
	"Tokyo":    "🗼",
	"Kyoto":    "⛩️",
	"Osaka":    "🏯",
	"Nara":     "🦌",
	"Kamakura": "🌊",
	"Hokkaido": "❄️",
	"Uji":      "🍵",
}

// New builds a Catalog from raw records, sanitizing them on the way in.
// Records missing a name or city are dropped, a missing area becomes
// "Unknown Area", and negative fares or fees are clamped to 0. Every repair
// is logged so defective source data is visible without crashing requests.
func New(pilgrimages []Anime, dayPasses map[string]int, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}

	clean := make([]Anime, 0, len(pilgrimages))
	for _, a := range pilgrimages {
		if strings.TrimSpace(a.Name) == "" {
			log.Warn("catalog: dropping anime entry without a name")
			continue
		}
		locs := make([]domain.Location, 0, len(a.Locations))
		for _, loc := range a.Locations {
			if strings.TrimSpace(loc.Name) == "" || strings.TrimSpace(loc.City) == "" {
				log.Warn("catalog: dropping location without name or city", "anime", a.Name, "name", loc.Name)
				continue
			}
			if strings.TrimSpace(loc.Area) == "" {
				loc.Area = "Unknown Area"
			}
			if loc.TransportCost < 0 {
				log.Warn("catalog: negative transport_cost clamped to 0", "location", loc.Name)
				loc.TransportCost = 0
			}
			if loc.EntryFee < 0 {
				log.Warn("catalog: negative entry_fee clamped to 0", "location", loc.Name)
				loc.EntryFee = 0
			}
			locs = append(locs, loc)
		}
		a.Locations = locs
		clean = append(clean, a)
	}

	passes := make(map[string]int, len(dayPasses))
	for city, price := range dayPasses {
		if price <= 0 {
			log.Warn("catalog: ignoring non-positive day-pass price", "city", city, "price", price)
			continue
		}
		passes[strings.ToLower(city)] = price
	}

	return &Catalog{pilgrimages: clean, passes: passes}
}

// Cities returns every city that has at least one pilgrimage location,
// preferred cities first, the rest alphabetical, each with its icon.
func (c *Catalog) Cities() []CityInfo {
	seen := map[string]bool{}
	for _, a := range c.pilgrimages {
		for _, loc := range a.Locations {
			seen[loc.City] = true
		}
	}

	names := make([]string, 0, len(seen))
	for _, city := range preferredCityOrder {
		if seen[city] {
			names = append(names, city)
			delete(seen, city)
		}
	}
	rest := make([]string, 0, len(seen))
	for city := range seen {
		rest = append(rest, city)
	}
	sort.Strings(rest)
	names = append(names, rest...)

	out := make([]CityInfo, 0, len(names))
	for _, name := range names {
		icon, ok := cityIcons[name]
		if !ok {
			icon = "📍"
		}
		out = append(out, CityInfo{Name: name, Icon: icon})
	}
	return out
}

// HasCity reports whether any location exists in the given city.
// Matching is case-insensitive.
func (c *Catalog) HasCity(city string) bool {
	for _, a := range c.pilgrimages {
		for _, loc := range a.Locations {
			if strings.EqualFold(loc.City, city) {
				return true
			}
		}
	}
	return false
}

// AnimeForCity returns every anime with at least one location in the city,
// sorted by anime name. Matching is case-insensitive.
func (c *Catalog) AnimeForCity(city string) []AnimeInfo {
	out := []AnimeInfo{}
	for _, a := range c.pilgrimages {
		for _, loc := range a.Locations {
			if strings.EqualFold(loc.City, city) {
				out = append(out, AnimeInfo{
					Name:     a.Name,
					NameEN:   a.NameEN,
					ImageURL: a.ImageURL,
					SongURL:  a.SongURL,
				})
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LocationsFor returns the union of locations across the selected anime,
// restricted to the city, each tagged with its source anime. The same
// physical location may appear once per anime that features it; the planner
// deduplicates. Matching is case-insensitive.
func (c *Catalog) LocationsFor(city string, animeNames []string) []domain.Location {
	selected := make(map[string]bool, len(animeNames))
	for _, name := range animeNames {
		selected[name] = true
	}

	out := []domain.Location{}
	for _, a := range c.pilgrimages {
		if !selected[a.Name] {
			continue
		}
		for _, loc := range a.Locations {
			if !strings.EqualFold(loc.City, city) {
				continue
			}
			loc.SourceAnime = a.Name
			loc.SourceAnimeEN = a.NameEN
			out = append(out, loc)
		}
	}
	return out
}

// DayPassPrice returns the flat daily transit pass price for the city.
// ok is false when the city sells no pass. Matching is case-insensitive.
func (c *Catalog) DayPassPrice(city string) (price int, ok bool) {
	price, ok = c.passes[strings.ToLower(city)]
	return price, ok
}
