package composer

// Entity kinds
const (
	EntityRoom      = "room"
	EntityPromotion = "promotion"
	EntityService   = "service"
	EntityOccupancy = "occupancy"
	EntityRoleStats = "role_stats"
	EntityStayDate  = "stay_date"
)

// ExtractedEntity is one piece of specific data looked up for a message.
type ExtractedEntity struct {
	Kind  string `json:"kind"`
	Query string `json:"query,omitempty"`
	Text  string `json:"text"`
}

// Composition is a ready-to-send prompt.
type Composition struct {
	Prompt          string            `json:"prompt"`
	HasSpecificData bool              `json:"hasSpecificData"`
	Entities        []ExtractedEntity `json:"entities"`
}

// Options configures a composer.
type Options struct {
	HistoryLimit       int
	SupportPhone       string
	ExtractConcurrency int
}
