package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// MemberListKey returns the cache key for the full member listing.
func (r *CacheKeyStruct) MemberListKey() string {
	return "members:list"
}

var CacheKey = NewCacheKeyStruct()
