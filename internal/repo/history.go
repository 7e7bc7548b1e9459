package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/quantlark/oi-sentinel/internal/entity"
)

// HistoryRepo is the append-only snapshot history log.
type HistoryRepo interface {
	Append(ctx context.Context, rows []entity.SnapshotRow) error
}

type snapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) HistoryRepo {
	return &snapshotRepo{
		db: db,
	}
}

func (r *snapshotRepo) Append(ctx context.Context, rows []entity.SnapshotRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
