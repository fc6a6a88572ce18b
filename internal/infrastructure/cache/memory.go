package cache

import (
	"hospitrack/config"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// NewMemoryCache is the in-process fallback used when Redis is disabled.
// Entries do not survive a restart and are not shared between replicas.
func NewMemoryCache(cfg config.CacheConfig) *gocache.Cache {
	logrus.Info("Redis disabled, using in-memory cache")
	return gocache.New(cfg.StatsTTL, cfg.CleanupInterval)
}
