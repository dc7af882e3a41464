package ports

import "time"

type CachePort[T any] interface {
	Set(key string, val T)
	Get(key string) (T, bool)
	Len() int
	ClearKey(key string)
	ClearAll()
	GetCapacity() int
	GetTTL() time.Duration
}
