package filestore

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"hotel-assistant/internal/hotelctx"
	"hotel-assistant/pkg/log"
)

//go:embed data.yaml
var defaultData []byte

// Store serves hotel facts from a YAML fact sheet. Rendered context strings
// are cached for CacheTTL so a reloaded sheet is picked up without restarts.
type Store struct {
	l     log.Logger
	data  dataFile
	cache *expirable.LRU[string, string]
	now   func() time.Time
}

var _ hotelctx.Collaborator = (*Store)(nil)

// New loads the fact sheet at cfg.DataPath, or the embedded one when the path is empty.
func New(cfg Config, l log.Logger) (*Store, error) {
	raw := defaultData
	if cfg.DataPath != "" {
		b, err := os.ReadFile(cfg.DataPath)
		if err != nil {
			return nil, fmt.Errorf("%s: read %s: %w", LogPrefixNew, cfg.DataPath, err)
		}
		raw = b
	}

	data, err := decode(raw)
	if err != nil {
		return nil, err
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	l.Infof(context.Background(), "%s: loaded %d rooms, %d promotions, %d services",
		LogPrefixNew, len(data.Rooms), len(data.Promotions), len(data.Services))

	return &Store{
		l:     l,
		data:  data,
		cache: expirable.NewLRU[string, string](size, nil, ttl),
		now:   time.Now,
	}, nil
}

func decode(raw []byte) (dataFile, error) {
	var data dataFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return dataFile{}, fmt.Errorf("%w: %v", hotelctx.ErrDecodeData, err)
	}
	if len(data.Rooms) == 0 {
		return dataFile{}, hotelctx.ErrNoRooms
	}
	return data, nil
}
