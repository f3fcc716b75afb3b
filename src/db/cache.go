package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked in a registry so every analytics entry can be
// dropped at once when a write lands, without knowing which users or range
// tokens are cached.
var (
	Cache *ristretto.Cache

	analyticsCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func GetAnalyticsCache(key string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(key)
}

func SetAnalyticsCache(key string, value interface{}) {
	if Cache == nil {
		return
	}
	analyticsCacheKeys.Lock()
	analyticsCacheKeys.m[key] = struct{}{}
	analyticsCacheKeys.Unlock()
	Cache.Set(key, value, 1)
}

// ClearAllAnalyticsCaches drops every cached analytics report. Called after
// any write that changes a user's transactions.
func ClearAllAnalyticsCaches() {
	if Cache == nil {
		return
	}
	analyticsCacheKeys.Lock()
	for key := range analyticsCacheKeys.m {
		Cache.Del(key)
	}
	analyticsCacheKeys.m = make(map[string]struct{})
	analyticsCacheKeys.Unlock()
}
