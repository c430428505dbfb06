package repository

import (
	"context"

	"kanban/internal/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Stats holds row counts reported by the setup status endpoint.
type Stats struct {
	Boards int64
	Lists  int64
	Cards  int64
}

type StatsRepositoryInterface interface {
	Counts(ctx context.Context) (Stats, error)
}

var _ StatsRepositoryInterface = (*StatsRepository)(nil)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Counts queries the three tables concurrently and fails if any query fails.
func (r *StatsRepository) Counts(ctx context.Context) (Stats, error) {
	var stats Stats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(ctx).Model(&model.Board{}).Count(&stats.Boards).Error
	})
	g.Go(func() error {
		return r.db.WithContext(ctx).Model(&model.List{}).Count(&stats.Lists).Error
	})
	g.Go(func() error {
		return r.db.WithContext(ctx).Model(&model.Card{}).Count(&stats.Cards).Error
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
