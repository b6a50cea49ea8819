package property

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidFilter = errors.New("property: invalid filter")

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// Service validates search input and delegates to storage.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// Search applies limit defaults/caps and rejects inconsistent filters
// before touching storage.
func (s *Service) Search(ctx context.Context, f SearchFilter) ([]Property, error) {
	if s.repo == nil {
		return nil, errors.New("property: repository not configured")
	}

	if f.MinPrice < 0 || f.MaxPrice < 0 {
		return nil, fmt.Errorf("%w: price bounds must be non-negative", ErrInvalidFilter)
	}
	if f.MaxPrice > 0 && f.MinPrice > f.MaxPrice {
		return nil, fmt.Errorf("%w: min_price exceeds max_price", ErrInvalidFilter)
	}
	if f.MinBedrooms < 0 {
		return nil, fmt.Errorf("%w: bedrooms must be non-negative", ErrInvalidFilter)
	}
	if f.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must be non-negative", ErrInvalidFilter)
	}
	if f.Type != "" && !validType(f.Type) {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, f.Type)
	}
	if f.Status != "" && !validStatus(f.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, f.Status)
	}

	if f.Limit <= 0 {
		f.Limit = defaultSearchLimit
	}
	if f.Limit > maxSearchLimit {
		f.Limit = maxSearchLimit
	}

	return s.repo.Search(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (Property, error) {
	if s.repo == nil {
		return Property{}, errors.New("property: repository not configured")
	}
	if id == "" {
		return Property{}, fmt.Errorf("%w: id required", ErrInvalidFilter)
	}
	return s.repo.GetByID(ctx, id)
}

func validType(t PropertyType) bool {
	switch t {
	case TypeHouse, TypeApartment, TypeCondo, TypeTownhouse, TypeLand:
		return true
	default:
		return false
	}
}

func validStatus(s ListingStatus) bool {
	switch s {
	case StatusForSale, StatusForRent, StatusSold:
		return true
	default:
		return false
	}
}
