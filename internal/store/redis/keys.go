package redis

const (
	// KeyPrefixCatalog is the prefix for cached catalog snapshots.
	KeyPrefixCatalog = "doorhub:catalog:"
	// KeyPrefixDiagnosis is the prefix for persisted quiz results.
	KeyPrefixDiagnosis = "doorhub:diagnosis:"
)

// CatalogKey returns the Redis key for a catalog collection snapshot.
func CatalogKey(collection string) string {
	return KeyPrefixCatalog + collection
}

// DiagnosisKey returns the Redis key for a user's quiz result.
func DiagnosisKey(userID string) string {
	return KeyPrefixDiagnosis + userID
}
