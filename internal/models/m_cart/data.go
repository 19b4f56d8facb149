package m_cart

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildUpsertMap prepares the row for a snapshot write.
func BuildUpsertMap(key string, payload []byte, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColSnapshotKey: key,
		ColPayload:     string(payload),
		ColUpdatedAt:   updatedAt,
	}
}

// UpsertMutation replaces the snapshot stored under the row's key.
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertOrUpdateMap(TableName, values)
}
