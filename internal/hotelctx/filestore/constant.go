package filestore

import "time"

// Log prefixes
const (
	LogPrefixNew     = "internal.hotelctx.filestore.New"
	LogPrefixContext = "internal.hotelctx.filestore.context"
)

// Defaults
const (
	DefaultCacheTTL  = 5 * time.Minute
	DefaultCacheSize = 16
)

// Cache keys
const (
	cacheKeyStatic  = "static"
	cacheKeyLocal   = "local"
	cacheKeyDynamic = "dynamic"
)

const dateLayout = "2006-01-02"
