package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID   = "product_id"
	ColPosition    = "position"
	ColName        = "name"
	ColDescription = "description"
	ColPrice       = "price"
	ColCategory    = "category"
	ColRating      = "rating"
	ColReviews     = "reviews"
	ColInStock     = "in_stock"
	ColColors      = "colors"
	ColSizes       = "sizes"
	ColFeatures    = "features"
	ColImage       = "image"
)

// SelectColumns is the column order used by read queries and row decoding.
var SelectColumns = []string{
	ColProductID,
	ColName,
	ColDescription,
	ColPrice,
	ColCategory,
	ColRating,
	ColReviews,
	ColInStock,
	ColColors,
	ColSizes,
	ColFeatures,
	ColImage,
}
