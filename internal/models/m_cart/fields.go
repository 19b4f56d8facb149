package m_cart

// Field constants for the cart_snapshots table: one serialized cart per key.
const (
	TableName = "cart_snapshots"

	ColSnapshotKey = "snapshot_key"
	ColPayload     = "payload"
	ColUpdatedAt   = "updated_at"
)
