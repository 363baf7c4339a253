// Package store is the boundary to the durable RSVP collection. The
// service uses exactly three operations against it: one create, one
// existence check by email, and the aggregate counts. Records are
// never updated or deleted here.
package store

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/hy-wedding/rsvp-api/internal/models"
)

type RSVPStore interface {
	// Create persists one record per call, best effort, no retry.
	Create(ctx context.Context, fields models.RSVPFields) (*models.RSVP, error)
	// HasSubmission reports whether any record with the given contact
	// email exists. It checks existence only, never enumerates.
	HasSubmission(ctx context.Context, email string) (bool, error)
	// Stats returns the aggregate attendance counts.
	Stats(ctx context.Context) (*models.RSVPStats, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, fields models.RSVPFields) (*models.RSVP, error) {
	now := s.db.NowFunc()
	rsvp := models.RSVP{
		ID:         uuid.NewString(),
		RSVPFields: fields,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.db.WithContext(ctx).Create(&rsvp).Error; err != nil {
		return nil, err
	}
	return &rsvp, nil
}

func (s *GormStore) HasSubmission(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.RSVP{}).
		Where("email = ?", email).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Stats runs its four counts concurrently; sqlite serializes them
// internally but remote document stores do not.
func (s *GormStore) Stats(ctx context.Context) (*models.RSVPStats, error) {
	var stats models.RSVPStats
	g, ctx := errgroup.WithContext(ctx)

	count := func(dest *int64, conds map[string]any) func() error {
		return func() error {
			return s.db.WithContext(ctx).
				Model(&models.RSVP{}).
				Where(conds).
				Count(dest).Error
		}
	}

	g.Go(count(&stats.Attending, map[string]any{"status": models.Attending}))
	g.Go(count(&stats.NotAttending, map[string]any{"status": models.NotAttending}))
	g.Go(count(&stats.GroomSideAttending, map[string]any{"status": models.Attending, "guest_side": models.GroomSide}))
	g.Go(count(&stats.BrideSideAttending, map[string]any{"status": models.Attending, "guest_side": models.BrideSide}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.Total = stats.Attending + stats.NotAttending
	return &stats, nil
}
