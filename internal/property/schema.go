package property

import (
	"context"
	"database/sql"
	"log/slog"

	"estate-voice-api/pkg/utils"

	"github.com/google/uuid"
)

// One statement per entry: the pgx extended protocol rejects
// multi-statement Exec calls.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		id         UUID PRIMARY KEY,
		title      TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type       TEXT NOT NULL,
		status     TEXT NOT NULL,
		city       TEXT NOT NULL,
		state      TEXT NOT NULL,
		price      BIGINT NOT NULL,
		bedrooms   INT NOT NULL DEFAULT 0,
		bathrooms  DOUBLE PRECISION NOT NULL DEFAULT 0,
		area_sqft  INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_city ON properties (LOWER(city))`,
	`CREATE INDEX IF NOT EXISTS idx_properties_price ON properties (price)`,
}

// EnsureSchema creates the listings table and seeds demo rows when the
// table is empty. Runs in one transaction so a half-seeded table never
// survives a crash.
func EnsureSchema(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	return utils.WithTx(ctx, db, nil, func(ctx context.Context, tx *sql.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}

		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM properties").Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		log.Info("seeding demo property listings")
		for _, p := range demoListings() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO properties (id, title, description, type, status, city, state, price, bedrooms, bathrooms, area_sqft)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
				p.ID, p.Title, p.Description, string(p.Type), string(p.Status),
				p.City, p.State, p.Price, p.Bedrooms, p.Bathrooms, p.AreaSqft,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func demoListings() []Property {
	return []Property{
		{
			ID:          uuid.NewString(),
			Title:       "Sunny 3BR Craftsman near downtown",
			Description: "Renovated craftsman with original hardwood, large porch and a fenced yard.",
			Type:        TypeHouse,
			Status:      StatusForSale,
			City:        "Austin",
			State:       "TX",
			Price:       585000,
			Bedrooms:    3,
			Bathrooms:   2,
			AreaSqft:    1850,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Modern 1BR loft with skyline views",
			Description: "Floor-to-ceiling windows, in-unit laundry, walkable to transit.",
			Type:        TypeApartment,
			Status:      StatusForRent,
			City:        "Austin",
			State:       "TX",
			Price:       2100,
			Bedrooms:    1,
			Bathrooms:   1,
			AreaSqft:    780,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Townhouse with two-car garage",
			Description: "End unit, community pool, minutes from the tech corridor.",
			Type:        TypeTownhouse,
			Status:      StatusForSale,
			City:        "Round Rock",
			State:       "TX",
			Price:       415000,
			Bedrooms:    3,
			Bathrooms:   2.5,
			AreaSqft:    1620,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Downtown condo, concierge building",
			Description: "Corner unit with balcony, gym and rooftop deck included.",
			Type:        TypeCondo,
			Status:      StatusForSale,
			City:        "Dallas",
			State:       "TX",
			Price:       349000,
			Bedrooms:    2,
			Bathrooms:   2,
			AreaSqft:    1100,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Five acres of build-ready land",
			Description: "Utilities at the road, light deed restrictions, hill country views.",
			Type:        TypeLand,
			Status:      StatusForSale,
			City:        "Dripping Springs",
			State:       "TX",
			Price:       275000,
		},
	}
}
