package common

const (
	// SnapshotRedisKey is where the ingestion pipeline publishes the snapshot JSON.
	SnapshotRedisKey = "fund-directory:snapshot"
	// SnapshotFilePath is the default location of the published snapshot file.
	SnapshotFilePath = "data/fund-directory.json"
)
