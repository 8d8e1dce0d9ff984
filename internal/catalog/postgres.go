package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/gloriatan/ANI/internal/domain"
)

// db is the minimal query interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each test.
type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostgres builds the catalog snapshot from the anime, locations, and
// day_passes tables. Like the JSON loaders it runs once at startup; the
// resulting Catalog is the same immutable in-memory structure, so request
// handling never touches the database.
func LoadPostgres(ctx context.Context, conn db, log *slog.Logger) (*Catalog, error) {
	animeByID, order, err := loadAnime(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadPostgres: %w", err)
	}

	if err := loadLocations(ctx, conn, animeByID); err != nil {
		return nil, fmt.Errorf("catalog.LoadPostgres: %w", err)
	}

	passes, err := loadDayPasses(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadPostgres: %w", err)
	}

	pilgrimages := make([]Anime, 0, len(order))
	for _, id := range order {
		pilgrimages = append(pilgrimages, *animeByID[id])
	}
	return New(pilgrimages, passes, log), nil
}

func loadAnime(ctx context.Context, conn db) (map[int64]*Anime, []int64, error) {
	const q = `
		SELECT id, name, name_en, image_url, song_url
		FROM anime
		ORDER BY id`

	rows, err := conn.Query(ctx, q)
	if err != nil {
		return nil, nil, fmt.Errorf("query anime: %w", err)
	}
	defer rows.Close()

	byID := map[int64]*Anime{}
	var order []int64
	for rows.Next() {
		var (
			id   int64
			a    Anime
			img  *string
			song *string
		)
		if err := rows.Scan(&id, &a.Name, &a.NameEN, &img, &song); err != nil {
			return nil, nil, fmt.Errorf("scan anime: %w", err)
		}
		if img != nil {
			a.ImageURL = *img
		}
		if song != nil {
			a.SongURL = *song
		}
		byID[id] = &a
		order = append(order, id)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("anime rows: %w", err)
	}
	return byID, order, nil
}

func loadLocations(ctx context.Context, conn db, animeByID map[int64]*Anime) error {
	const q = `
		SELECT anime_id, name, city, area, transport_cost, entry_fee, location_type, description
		FROM locations
		ORDER BY id`

	rows, err := conn.Query(ctx, q)
	if err != nil {
		return fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			animeID int64
			loc     domain.Location
		)
		err := rows.Scan(&animeID, &loc.Name, &loc.City, &loc.Area,
			&loc.TransportCost, &loc.EntryFee, &loc.LocationType, &loc.Description)
		if err != nil {
			return fmt.Errorf("scan location: %w", err)
		}
		a, ok := animeByID[animeID]
		if !ok {
			// Orphan rows are a data defect; New would never see the anime
			// anyway, so skip here.
			continue
		}
		a.Locations = append(a.Locations, loc)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("location rows: %w", err)
	}
	return nil
}

func loadDayPasses(ctx context.Context, conn db) (map[string]int, error) {
	const q = `SELECT city, price FROM day_passes`

	rows, err := conn.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query day_passes: %w", err)
	}
	defer rows.Close()

	passes := map[string]int{}
	for rows.Next() {
		var (
			city  string
			price int
		)
		if err := rows.Scan(&city, &price); err != nil {
			return nil, fmt.Errorf("scan day_pass: %w", err)
		}
		passes[city] = price
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("day_pass rows: %w", err)
	}
	return passes, nil
}
