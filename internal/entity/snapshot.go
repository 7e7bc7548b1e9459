package entity

import (
	"time"
)

// SnapshotRow 快照历史的一行, 仅追加, 不更新
type SnapshotRow struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	Symbol       string `gorm:"index"`
	Price        float64
	OpenInterest float64
	FundingRate  float64
	Phase        string    `gorm:"index"`
	Timestamp    time.Time `gorm:"index"`
}
