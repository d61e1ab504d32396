package filestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-assistant/internal/hotelctx"
)

func (s *Store) StaticHotelContext(ctx context.Context) (string, error) {
	return s.cached(ctx, cacheKeyStatic, s.renderStatic)
}

func (s *Store) LocalContext(ctx context.Context) (string, error) {
	return s.cached(ctx, cacheKeyLocal, s.renderLocal)
}

func (s *Store) DynamicContext(ctx context.Context) (string, error) {
	return s.cached(ctx, cacheKeyDynamic, s.renderDynamic)
}

func (s *Store) cached(ctx context.Context, key string, render func() string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if v, ok := s.cache.Get(key); ok {
		return v, nil
	}

	v := render()
	s.cache.Add(key, v)
	s.l.Debugf(ctx, "%s: rendered %s context (%d bytes)", LogPrefixContext, key, len(v))
	return v, nil
}

func (s *Store) renderStatic() string {
	h := s.data.Hotel

	var sb strings.Builder
	fmt.Fprintf(&sb, "THÔNG TIN KHÁCH SẠN:\n- Tên: %s (%d sao)\n", h.Name, h.Stars)
	fmt.Fprintf(&sb, "- Địa chỉ: %s\n- Điện thoại: %s\n- Email: %s\n", h.Address, h.Phone, h.Email)
	fmt.Fprintf(&sb, "- Nhận phòng từ %s, trả phòng trước %s\n", h.CheckInTime, h.CheckOutTime)
	if len(h.Amenities) > 0 {
		fmt.Fprintf(&sb, "- Tiện ích: %s\n", strings.Join(h.Amenities, ", "))
	}
	if len(h.Policies) > 0 {
		sb.WriteString("CHÍNH SÁCH:\n")
		for _, p := range h.Policies {
			fmt.Fprintf(&sb, "- %s\n", p)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (s *Store) renderLocal() string {
	loc := s.data.Local

	var sb strings.Builder
	fmt.Fprintf(&sb, "KHU VỰC XUNG QUANH (%s):\n", loc.City)
	for _, a := range loc.Attractions {
		fmt.Fprintf(&sb, "- %s\n", a)
	}
	if len(loc.Transport) > 0 {
		sb.WriteString("DI CHUYỂN:\n")
		for _, t := range loc.Transport {
			fmt.Fprintf(&sb, "- %s\n", t)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (s *Store) renderDynamic() string {
	stats := s.occupancy()
	today := s.now()

	var sb strings.Builder
	fmt.Fprintf(&sb, "TÌNH TRẠNG HIỆN TẠI:\n- Tổng số phòng: %d, trống: %d, đang ở: %d, đã đặt: %d, bảo trì: %d\n",
		stats.TotalRooms, stats.Available, stats.Occupied, stats.Reserved, stats.Maintenance)
	fmt.Fprintf(&sb, "- Công suất phòng: %.1f%%\n", stats.Rate)

	sb.WriteString("GIÁ PHÒNG:\n")
	for _, rt := range s.roomTypes() {
		fmt.Fprintf(&sb, "- %s: %s/đêm (còn trống %d)\n", rt.name, hotelctx.FormatVND(rt.price), rt.available)
	}

	active := s.activePromotions(today)
	if len(active) > 0 {
		sb.WriteString("KHUYẾN MÃI ĐANG ÁP DỤNG:\n")
		for _, p := range active {
			fmt.Fprintf(&sb, "- %s: giảm %.0f%% (%s đến %s)\n", p.Name, p.DiscountPercent, p.ValidFrom, p.ValidTo)
		}
	}

	if len(s.data.Services) > 0 {
		sb.WriteString("DỊCH VỤ:\n")
		for _, svc := range s.data.Services {
			fmt.Fprintf(&sb, "- %s: %s/%s\n", svc.Name, hotelctx.FormatVND(svc.Price), svc.Unit)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

type roomTypeSummary struct {
	name      string
	price     int64
	available int
}

// roomTypes groups rooms by type in first-seen order.
func (s *Store) roomTypes() []roomTypeSummary {
	var out []roomTypeSummary
	idx := map[string]int{}
	for _, r := range s.data.Rooms {
		i, ok := idx[r.Type]
		if !ok {
			i = len(out)
			idx[r.Type] = i
			out = append(out, roomTypeSummary{name: r.Type, price: r.Price})
		}
		if r.Status == hotelctx.RoomStatusAvailable {
			out[i].available++
		}
	}
	return out
}

func (s *Store) activePromotions(day time.Time) []hotelctx.Promotion {
	d := day.Format(dateLayout)
	var out []hotelctx.Promotion
	for _, p := range s.data.Promotions {
		// ISO dates compare lexically
		if (p.ValidFrom == "" || p.ValidFrom <= d) && (p.ValidTo == "" || d <= p.ValidTo) {
			out = append(out, p)
		}
	}
	return out
}
