package m_product

import (
	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the canonical fields for insertion.
// Optional sequences and an empty description are stored as NULL.
func BuildInsertMap(productID string, position int64, name string, description *string,
	price float64, category string, rating float64, reviews int64, inStock bool,
	colors, sizes, features []string, image string) map[string]interface{} {

	m := map[string]interface{}{
		ColProductID: productID,
		ColPosition:  position,
		ColName:      name,
		ColPrice:     price,
		ColCategory:  category,
		ColRating:    rating,
		ColReviews:   reviews,
		ColInStock:   inStock,
		ColImage:     image,
	}

	if description != nil {
		m[ColDescription] = *description
	} else {
		m[ColDescription] = nil
	}

	m[ColColors] = nullableList(colors)
	m[ColSizes] = nullableList(sizes)
	m[ColFeatures] = nullableList(features)

	return m
}

// InsertOrUpdateMutation upserts a product row using a map of values.
// Expected keys are the column names declared in fields.go.
func InsertOrUpdateMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertOrUpdateMap(TableName, values)
}

func nullableList(v []string) interface{} {
	if v == nil {
		return nil
	}
	return v
}
