package cache

import "strconv"

// Cache key layout. All keys for one owner share the "owner:<id>:" prefix,
// which is what makes prefix invalidation cover the whole namespace.

// ListKey returns the cache key holding the owner's full task list.
func ListKey(ownerID int64) string {
	return "owner:" + strconv.FormatInt(ownerID, 10) + ":tasks"
}

// ItemKey returns the cache key holding a single task snapshot.
func ItemKey(ownerID, taskID int64) string {
	return "owner:" + strconv.FormatInt(ownerID, 10) + ":task:" + strconv.FormatInt(taskID, 10)
}

// OwnerPattern returns the glob pattern matching every cache key that
// belongs to the owner. Used exclusively for invalidation.
func OwnerPattern(ownerID int64) string {
	return "owner:" + strconv.FormatInt(ownerID, 10) + ":*"
}
