package composer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-assistant/internal/hotelctx"
	"hotel-assistant/pkg/datemath"
	"hotel-assistant/pkg/log"
)

type mockCollaborator struct {
	mu      sync.Mutex
	calls   []string
	failAll bool

	rooms      map[string]hotelctx.Room
	promotions []hotelctx.Promotion
	services   []hotelctx.Service
}

var errCollaborator = errors.New("collaborator down")

func newMockCollaborator() *mockCollaborator {
	return &mockCollaborator{
		rooms: map[string]hotelctx.Room{
			"201": {Number: "201", Type: "Deluxe", Floor: 2, Price: 1200000, Capacity: 2, Status: hotelctx.RoomStatusAvailable, Amenities: []string{"TV"}},
		},
		promotions: []hotelctx.Promotion{
			{Name: "Ưu đãi mùa hè", Description: "Giảm giá mùa hè", DiscountPercent: 20, ValidFrom: "2026-06-01", ValidTo: "2026-08-31"},
		},
		services: []hotelctx.Service{
			{Name: "Spa", Description: "Massage", Price: 500000, Unit: "lượt", Hours: "09:00 - 21:00"},
		},
	}
}

func (m *mockCollaborator) record(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	if m.failAll {
		return errCollaborator
	}
	return nil
}

func (m *mockCollaborator) DynamicContext(ctx context.Context) (string, error) {
	if err := m.record("dynamic"); err != nil {
		return "", err
	}
	return "DYNAMIC FACTS", nil
}

func (m *mockCollaborator) StaticHotelContext(ctx context.Context) (string, error) {
	if err := m.record("static"); err != nil {
		return "", err
	}
	return "STATIC FACTS", nil
}

func (m *mockCollaborator) LocalContext(ctx context.Context) (string, error) {
	if err := m.record("local"); err != nil {
		return "", err
	}
	return "LOCAL FACTS", nil
}

func (m *mockCollaborator) RoomByNumber(ctx context.Context, number string) (*hotelctx.Room, error) {
	if err := m.record("room"); err != nil {
		return nil, err
	}
	r, ok := m.rooms[number]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *mockCollaborator) PromotionByName(ctx context.Context, name string) (*hotelctx.Promotion, error) {
	if err := m.record("promotion"); err != nil {
		return nil, err
	}
	for _, p := range m.promotions {
		if strings.Contains(strings.ToLower(p.Name), name) {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockCollaborator) ServiceByName(ctx context.Context, name string) (*hotelctx.Service, error) {
	if err := m.record("service"); err != nil {
		return nil, err
	}
	for _, s := range m.services {
		if strings.EqualFold(s.Name, name) {
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockCollaborator) OccupancyStats(ctx context.Context) (*hotelctx.OccupancyStats, error) {
	if err := m.record("occupancy"); err != nil {
		return nil, err
	}
	return &hotelctx.OccupancyStats{TotalRooms: 10, Occupied: 6, Reserved: 1, Available: 2, Maintenance: 1, Rate: 70}, nil
}

func (m *mockCollaborator) UserRoleStats(ctx context.Context) ([]hotelctx.RoleStat, error) {
	if err := m.record("role_stats"); err != nil {
		return nil, err
	}
	return []hotelctx.RoleStat{{Role: "manager", Count: 2}, {Role: "customer", Count: 40}}, nil
}

// fixedNow is Wednesday 2026-07-15 10:30 in Asia/Ho_Chi_Minh.
var fixedNow = time.Date(2026, 7, 15, 3, 30, 0, 0, time.UTC)

func newTestComposer(t *testing.T, collab hotelctx.Collaborator) *implComposer {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	c := New(log.NewNop(), collab, dates, Options{HistoryLimit: 2, SupportPhone: "1900 1234"})
	c.now = func() time.Time { return fixedNow }
	return c
}
