package models

// MenuItem is one priced entry of a category table. The table is chosen per
// category at query time, so the struct carries no TableName.
type MenuItem struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"type:varchar(255);not null"`
	Price float64 `json:"price" gorm:"not null"`
}

// CategoryCount is one row of the menu summary.
type CategoryCount struct {
	Category string `json:"category"`
	Items    int64  `json:"items"`
}

type MenuSummary struct {
	Categories []CategoryCount `json:"categories"`
	TotalItems int64           `json:"totalItems"`
}
