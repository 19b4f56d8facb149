package m_category

import "cloud.google.com/go/spanner"

// InsertOrUpdateMutation upserts one category descriptor. position keeps the
// descriptor order of the source dataset.
func InsertOrUpdateMutation(categoryID, name string, position int64) *spanner.Mutation {
	return spanner.InsertOrUpdateMap(TableName, map[string]interface{}{
		ColCategoryID: categoryID,
		ColName:       name,
		ColPosition:   position,
	})
}
