package filestore

import (
	"context"
	"strings"

	"hotel-assistant/internal/hotelctx"
)

func (s *Store) RoomByNumber(ctx context.Context, number string) (*hotelctx.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	number = strings.TrimSpace(number)
	for _, r := range s.data.Rooms {
		if strings.EqualFold(r.Number, number) {
			room := r
			room.Amenities = append([]string(nil), r.Amenities...)
			return &room, nil
		}
	}
	return nil, nil
}

// PromotionByName matches case-insensitively in either direction, so "mùa hè"
// finds "Ưu đãi mùa hè".
func (s *Store) PromotionByName(ctx context.Context, name string) (*hotelctx.Promotion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, p := range s.data.Promotions {
		if fuzzyEqual(p.Name, name) {
			promo := p
			return &promo, nil
		}
	}
	return nil, nil
}

func (s *Store) ServiceByName(ctx context.Context, name string) (*hotelctx.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, svc := range s.data.Services {
		if fuzzyEqual(svc.Name, name) {
			out := svc
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) OccupancyStats(ctx context.Context) (*hotelctx.OccupancyStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stats := s.occupancy()
	return &stats, nil
}

func (s *Store) UserRoleStats(ctx context.Context) ([]hotelctx.RoleStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]hotelctx.RoleStat(nil), s.data.RoleStats...), nil
}

func (s *Store) occupancy() hotelctx.OccupancyStats {
	stats := hotelctx.OccupancyStats{TotalRooms: len(s.data.Rooms)}
	for _, r := range s.data.Rooms {
		switch r.Status {
		case hotelctx.RoomStatusOccupied:
			stats.Occupied++
		case hotelctx.RoomStatusReserved:
			stats.Reserved++
		case hotelctx.RoomStatusMaintenance:
			stats.Maintenance++
		default:
			stats.Available++
		}
	}
	if stats.TotalRooms > 0 {
		stats.Rate = float64(stats.Occupied+stats.Reserved) * 100 / float64(stats.TotalRooms)
	}
	return stats
}

func fuzzyEqual(candidate, query string) bool {
	c := strings.ToLower(strings.TrimSpace(candidate))
	q := strings.ToLower(strings.TrimSpace(query))
	if c == "" || q == "" {
		return false
	}
	return strings.Contains(c, q) || strings.Contains(q, c)
}
