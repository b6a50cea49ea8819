package property

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("property: not found")

// Repository abstracts listing storage so the service and handlers can
// be tested without Postgres.
type Repository interface {
	Search(ctx context.Context, f SearchFilter) ([]Property, error)
	GetByID(ctx context.Context, id string) (Property, error)
}

// PostgresRepository implements Repository over database/sql (pgx stdlib
// driver).
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = "id, title, description, type, status, city, state, price, bedrooms, bathrooms, area_sqft, created_at"

// Search builds a WHERE clause from the populated filter fields only.
// All values travel as placeholders; no filter input is interpolated
// into the SQL text.
func (r *PostgresRepository) Search(ctx context.Context, f SearchFilter) ([]Property, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.City != "" {
		conds = append(conds, "LOWER(city) = LOWER("+arg(f.City)+")")
	}
	if f.State != "" {
		conds = append(conds, "LOWER(state) = LOWER("+arg(f.State)+")")
	}
	if f.Type != "" {
		conds = append(conds, "type = "+arg(string(f.Type)))
	}
	if f.Status != "" {
		conds = append(conds, "status = "+arg(string(f.Status)))
	}
	if f.MinPrice > 0 {
		conds = append(conds, "price >= "+arg(f.MinPrice))
	}
	if f.MaxPrice > 0 {
		conds = append(conds, "price <= "+arg(f.MaxPrice))
	}
	if f.MinBedrooms > 0 {
		conds = append(conds, "bedrooms >= "+arg(f.MinBedrooms))
	}
	if f.Query != "" {
		p := arg("%" + f.Query + "%")
		conds = append(conds, "(title ILIKE "+p+" OR description ILIKE "+p+")")
	}

	q := "SELECT " + selectColumns + " FROM properties"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC, id"
	q += " LIMIT " + arg(f.Limit)
	q += " OFFSET " + arg(f.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("property search query: %w", err)
	}
	defer rows.Close()

	out := []Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (Property, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM properties WHERE id = $1", id)
	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Property{}, ErrNotFound
	}
	if err != nil {
		return Property{}, fmt.Errorf("property lookup: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (Property, error) {
	var p Property
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Type,
		&p.Status,
		&p.City,
		&p.State,
		&p.Price,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.AreaSqft,
		&p.CreatedAt,
	)
	return p, err
}
