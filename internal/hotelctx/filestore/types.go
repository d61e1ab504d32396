package filestore

import (
	"time"

	"hotel-assistant/internal/hotelctx"
)

// Config tunes the file backed collaborator.
type Config struct {
	DataPath  string // empty uses the embedded fact sheet
	CacheTTL  time.Duration
	CacheSize int
}

type hotelInfo struct {
	Name         string   `yaml:"name"`
	Address      string   `yaml:"address"`
	Phone        string   `yaml:"phone"`
	Email        string   `yaml:"email"`
	Stars        int      `yaml:"stars"`
	CheckInTime  string   `yaml:"check_in_time"`
	CheckOutTime string   `yaml:"check_out_time"`
	Amenities    []string `yaml:"amenities"`
	Policies     []string `yaml:"policies"`
}

type localInfo struct {
	City        string   `yaml:"city"`
	Attractions []string `yaml:"attractions"`
	Transport   []string `yaml:"transport"`
}

type dataFile struct {
	Hotel      hotelInfo            `yaml:"hotel"`
	Local      localInfo            `yaml:"local"`
	Rooms      []hotelctx.Room      `yaml:"rooms"`
	Promotions []hotelctx.Promotion `yaml:"promotions"`
	Services   []hotelctx.Service   `yaml:"services"`
	RoleStats  []hotelctx.RoleStat  `yaml:"role_stats"`
}
