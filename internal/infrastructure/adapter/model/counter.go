package model

// Counter is one named sequence row. Mutated only through the atomic
// increment-and-fetch upsert, never deleted.
type Counter struct {
	Name string `gorm:"primaryKey;size:255"`
	Seq  int64  `gorm:"not null"`
}

// TableName specifies the table name for Counter
func (Counter) TableName() string {
	return "counters"
}
