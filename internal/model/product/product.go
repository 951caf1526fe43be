package product

// Product 商品模型，一行对应上游商品目录中的一条记录
type Product struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"column:title;type:text;not null" json:"title"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	Price       float64 `gorm:"column:price;not null" json:"price"`
	Image       string  `gorm:"column:image;type:text" json:"image"`
	Category    string  `gorm:"column:category;type:text" json:"category"`
	RatingRate  float64 `gorm:"column:rating_rate" json:"rating_rate"`
	RatingCount int     `gorm:"column:rating_count" json:"rating_count"`
}

func (Product) TableName() string {
	return "products"
}
