// Package main implements the catalog seed tool. It applies the goose
// migrations and loads a JSON pilgrimage dataset into Postgres, replacing
// whatever was there before. Run it once against a fresh database, then
// start the API server with the same DATABASE_URL.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed [-catalog path/to/catalog.json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/gloriatan/ANI/data"
	"github.com/gloriatan/ANI/internal/catalog"
	"github.com/gloriatan/ANI/migrations"
)

// catalogFile mirrors the JSON dataset layout.
type catalogFile struct {
	Pilgrimages []catalog.Anime `json:"pilgrimages"`
	DayPasses   map[string]int  `json:"day_passes"`
}

func main() {
	catalogPath := flag.String("catalog", "", "path to a catalog JSON file (default: embedded dataset)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	if err := run(context.Background(), dsn, *catalogPath); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed complete")
}

func run(ctx context.Context, dsn, catalogPath string) error {
	raw := data.PilgrimagesJSON
	if catalogPath != "" {
		b, err := os.ReadFile(catalogPath)
		if err != nil {
			return fmt.Errorf("read catalog file: %w", err)
		}
		raw = b
	}

	var f catalogFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	if err := migrate(conn); err != nil {
		return err
	}

	// One transaction for the whole load: either the dataset lands complete
	// or the previous contents survive untouched.
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE anime, locations, day_passes RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	for _, a := range f.Pilgrimages {
		var animeID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO anime (name, name_en, image_url, song_url)
			VALUES (@name, @name_en, @image_url, @song_url)
			RETURNING id`,
			pgx.NamedArgs{
				"name":      a.Name,
				"name_en":   a.NameEN,
				"image_url": nullable(a.ImageURL),
				"song_url":  nullable(a.SongURL),
			},
		).Scan(&animeID)
		if err != nil {
			return fmt.Errorf("insert anime %q: %w", a.Name, err)
		}

		for _, loc := range a.Locations {
			_, err := tx.Exec(ctx, `
				INSERT INTO locations (anime_id, name, city, area, transport_cost, entry_fee, location_type, description)
				VALUES (@anime_id, @name, @city, @area, @transport_cost, @entry_fee, @location_type, @description)`,
				pgx.NamedArgs{
					"anime_id":       animeID,
					"name":           loc.Name,
					"city":           loc.City,
					"area":           loc.Area,
					"transport_cost": loc.TransportCost,
					"entry_fee":      loc.EntryFee,
					"location_type":  loc.LocationType,
					"description":    loc.Description,
				},
			)
			if err != nil {
				return fmt.Errorf("insert location %q: %w", loc.Name, err)
			}
		}
		slog.Info("seeded anime", "name", a.Name, "locations", len(a.Locations))
	}

	for city, price := range f.DayPasses {
		_, err := tx.Exec(ctx, `INSERT INTO day_passes (city, price) VALUES (@city, @price)`,
			pgx.NamedArgs{"city": city, "price": price})
		if err != nil {
			return fmt.Errorf("insert day pass for %q: %w", city, err)
		}
	}

	return tx.Commit(ctx)
}

// migrate brings the schema up to date via the embedded goose migrations.
// goose wants a database/sql handle, so wrap the pgx connection with stdlib.
func migrate(conn *pgx.Conn) error {
	db := stdlib.OpenDB(*conn.Config())
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// nullable maps "" to NULL for optional text columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
