package domain

// Sequence backs public ID generation. One row per entity, bumped inside the
// insert transaction so generated IDs are strictly increasing.
type Sequence struct {
	Name  string `gorm:"primaryKey;size:20"`
	Value int64  `gorm:"not null;default:0"`
}

func (Sequence) TableName() string { return "sequences" }
