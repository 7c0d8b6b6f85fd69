package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// DBDirectory is a Finder over the stores table.
// It matches on email, phone and company; agent names are not stored relationally.
// Company names are folded in Go, since SQL LOWER does not fold Turkish letters or accents.
type DBDirectory struct {
	db *gorm.DB
}

// NewDBDirectory creates a DBDirectory.
func NewDBDirectory(db *gorm.DB) *DBDirectory {
	return &DBDirectory{db: db}
}

// FindByAgent returns the store matching agent, or nil.
func (d *DBDirectory) FindByAgent(ctx context.Context, agent Agent) (*Store, error) {
	if d.db == nil {
		return nil, fmt.Errorf("store directory database is not connected")
	}

	if email := FoldEmail(agent.Email); email != "" {
		if s, err := d.take(ctx, "LOWER(email) = ?", email); s != nil || err != nil {
			return s, err
		}
	}

	if key := PhoneKey(agent.Phone); key != "" {
		variants := []string{agent.Phone, key, "0" + key, "+90" + key, "90" + key}
		if s, err := d.take(ctx, "phone IN ?", variants); s != nil || err != nil {
			return s, err
		}
	}

	if company := FoldName(agent.Company); company != "" {
		return d.byName(ctx, company)
	}

	return nil, nil
}

// byName returns the first store, by id, whose folded name or company equals folded.
func (d *DBDirectory) byName(ctx context.Context, folded string) (*Store, error) {
	var candidates []Store
	err := d.db.WithContext(ctx).
		Where("name <> ? OR company <> ?", "", "").
		Order("id").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	for i := range candidates {
		if FoldName(candidates[i].Name) == folded || FoldName(candidates[i].Company) == folded {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

func (d *DBDirectory) take(ctx context.Context, query string, args ...any) (*Store, error) {
	var s Store
	err := d.db.WithContext(ctx).Where(query, args...).Order("id").Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	return &s, nil
}
