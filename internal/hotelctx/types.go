package hotelctx

// Room statuses
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusReserved    = "reserved"
	RoomStatusMaintenance = "maintenance"
)

type Room struct {
	Number    string   `yaml:"number" json:"number"`
	Type      string   `yaml:"type" json:"type"`
	Floor     int      `yaml:"floor" json:"floor"`
	Price     int64    `yaml:"price" json:"price"`
	Capacity  int      `yaml:"capacity" json:"capacity"`
	Status    string   `yaml:"status" json:"status"`
	Amenities []string `yaml:"amenities" json:"amenities"`
}

type Promotion struct {
	Name            string  `yaml:"name" json:"name"`
	Description     string  `yaml:"description" json:"description"`
	DiscountPercent float64 `yaml:"discount_percent" json:"discountPercent"`
	ValidFrom       string  `yaml:"valid_from" json:"validFrom"`
	ValidTo         string  `yaml:"valid_to" json:"validTo"`
}

type Service struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Price       int64  `yaml:"price" json:"price"`
	Unit        string `yaml:"unit" json:"unit"`
	Hours       string `yaml:"hours" json:"hours"`
}

// OccupancyStats is a snapshot of room usage.
type OccupancyStats struct {
	TotalRooms  int     `json:"totalRooms"`
	Occupied    int     `json:"occupied"`
	Reserved    int     `json:"reserved"`
	Available   int     `json:"available"`
	Maintenance int     `json:"maintenance"`
	Rate        float64 `json:"rate"` // occupied+reserved over total, 0..100
}

// RoleStat is the number of accounts holding a role.
type RoleStat struct {
	Role  string `yaml:"role" json:"role"`
	Count int    `yaml:"count" json:"count"`
}
