package store

// The following are the names of all the buckets used in the database.
const (
	bucketKey     = "key"
	bucketSetting = "setting"
)
