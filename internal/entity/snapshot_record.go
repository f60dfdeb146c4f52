package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// SnapshotRecord is a published snapshot stored in PostgreSQL. The newest
// row by generated_at is the current snapshot.
type SnapshotRecord struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	GeneratedAt time.Time      `gorm:"not null;index" json:"generated_at"`
	FundCount   int            `gorm:"not null" json:"fund_count"`
	Categories  pq.StringArray `gorm:"type:text[]" json:"categories"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the SnapshotRecord model.
func (SnapshotRecord) TableName() string {
	return "fund_directory_snapshots"
}
