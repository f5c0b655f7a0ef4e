package orgboard

// Local cache keys consumed by the state container. Values are opaque
// serialized snapshots of the corresponding in-memory structures.
const (
	// CacheKeyBulletin stores the serialized bulletin collection.
	CacheKeyBulletin = "orgboard.bbs"
	// CacheKeySettings stores the serialized site settings.
	CacheKeySettings = "orgboard.settings"
	// CacheKeyInquiries stores the serialized inquiry collection.
	CacheKeyInquiries = "orgboard.inquiries"
	// CacheKeyIsAdmin stores the admin flag as a boolean string.
	CacheKeyIsAdmin = "orgboard.is_admin"
)

// LocalCache is persistent key-value storage scoped to the running client.
//
// Implementations must treat missing keys as (value "", found false, nil
// error). Write failures (for example quota exhaustion) are returned to the
// caller, which logs and continues in memory for that cycle.
type LocalCache interface {
	// Get returns the serialized value stored under key.
	Get(key string) (value string, found bool, err error)
	// Set stores the serialized value under key.
	Set(key string, value string) error
}
