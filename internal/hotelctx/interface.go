package hotelctx

import "context"

// Collaborator supplies live hotel facts to the response composer.
// Lookups return nil, nil when nothing matches.
type Collaborator interface {
	DynamicContext(ctx context.Context) (string, error)
	StaticHotelContext(ctx context.Context) (string, error)
	LocalContext(ctx context.Context) (string, error)
	RoomByNumber(ctx context.Context, number string) (*Room, error)
	PromotionByName(ctx context.Context, name string) (*Promotion, error)
	ServiceByName(ctx context.Context, name string) (*Service, error)
	OccupancyStats(ctx context.Context) (*OccupancyStats, error)
	UserRoleStats(ctx context.Context) ([]RoleStat, error)
}
