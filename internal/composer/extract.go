package composer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"hotel-assistant/internal/hotelctx"
)

// extractor looks up one kind of specific data referenced in message.
// ok is false when the message does not mention that kind or nothing was found.
type extractor func(ctx context.Context, message string) (entity ExtractedEntity, ok bool, err error)

var (
	reRoomNumber = regexp.MustCompile(`phòng số\s*(\w+)|room number\s*(\w+)|(?:phòng|room)\s+#?(\d{3,4})`)
	rePromotion  = regexp.MustCompile(`(?:khuyến mãi|chương trình|ưu đãi|promotion)\s+"?([^"?.,!\n]+)`)
	reService    = regexp.MustCompile(`(?:dịch vụ|service)\s+([^?.,!\n]+)`)
	reOccupancy  = regexp.MustCompile(`công suất|tỷ lệ lấp đầy|lấp đầy|occupancy|tình trạng phòng|bao nhiêu phòng trống`)
	reRoleStats  = regexp.MustCompile(`thống kê (?:người dùng|tài khoản|nhân viên|vai trò)|bao nhiêu (?:nhân viên|khách hàng|người dùng|tài khoản)|user stat|role stat`)
)

var roomStatusLabels = map[string]string{
	hotelctx.RoomStatusAvailable:   "còn trống",
	hotelctx.RoomStatusOccupied:    "đang có khách",
	hotelctx.RoomStatusReserved:    "đã được đặt",
	hotelctx.RoomStatusMaintenance: "đang bảo trì",
}

var roleLabels = map[string]string{
	"manager":      "Quản lý",
	"receptionist": "Lễ tân",
	"customer":     "Khách hàng",
}

// extract runs every extractor concurrently and keeps the hits in extractor order.
// Collaborator failures are logged and dropped; only cancellation is returned.
func (c *implComposer) extract(ctx context.Context, message string) ([]ExtractedEntity, error) {
	lower := strings.ToLower(message)

	type slot struct {
		entity ExtractedEntity
		ok     bool
	}
	slots := make([]slot, len(c.extractors))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.ExtractConcurrency)

	for i, ex := range c.extractors {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			entity, ok, err := ex(gctx, lower)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				c.l.Warnf(ctx, "%s: extractor %d failed: %v", LogPrefixExtract, i, err)
				return nil
			}
			slots[i] = slot{entity: entity, ok: ok}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entities := make([]ExtractedEntity, 0, len(slots))
	for _, s := range slots {
		if s.ok {
			entities = append(entities, s.entity)
		}
	}
	return entities, nil
}

func (c *implComposer) extractRoom(ctx context.Context, message string) (ExtractedEntity, bool, error) {
	number := firstGroup(reRoomNumber.FindStringSubmatch(message))
	if number == "" {
		return ExtractedEntity{}, false, nil
	}

	room, err := c.collab.RoomByNumber(ctx, number)
	if err != nil || room == nil {
		return ExtractedEntity{}, false, err
	}

	status, ok := roomStatusLabels[room.Status]
	if !ok {
		status = room.Status
	}
	text := fmt.Sprintf("- Phòng %s: loại %s, tầng %d, giá %s/đêm, tối đa %d khách, %s",
		room.Number, room.Type, room.Floor, hotelctx.FormatVND(room.Price), room.Capacity, status)
	if len(room.Amenities) > 0 {
		text += ", tiện nghi: " + strings.Join(room.Amenities, ", ")
	}
	return ExtractedEntity{Kind: EntityRoom, Query: number, Text: text}, true, nil
}

func (c *implComposer) extractPromotion(ctx context.Context, message string) (ExtractedEntity, bool, error) {
	m := rePromotion.FindStringSubmatch(message)
	if m == nil {
		return ExtractedEntity{}, false, nil
	}

	promo, query, err := lookupByPrefix(ctx, m[1], c.collab.PromotionByName)
	if err != nil || promo == nil {
		return ExtractedEntity{}, false, err
	}

	text := fmt.Sprintf("- Khuyến mãi %q: giảm %.0f%%, %s (từ %s đến %s)",
		promo.Name, promo.DiscountPercent, promo.Description, promo.ValidFrom, promo.ValidTo)
	return ExtractedEntity{Kind: EntityPromotion, Query: query, Text: text}, true, nil
}

func (c *implComposer) extractService(ctx context.Context, message string) (ExtractedEntity, bool, error) {
	m := reService.FindStringSubmatch(message)
	if m == nil {
		return ExtractedEntity{}, false, nil
	}

	svc, query, err := lookupByPrefix(ctx, m[1], c.collab.ServiceByName)
	if err != nil || svc == nil {
		return ExtractedEntity{}, false, err
	}

	text := fmt.Sprintf("- Dịch vụ %s: %s, giá %s/%s, phục vụ %s",
		svc.Name, svc.Description, hotelctx.FormatVND(svc.Price), svc.Unit, svc.Hours)
	return ExtractedEntity{Kind: EntityService, Query: query, Text: text}, true, nil
}

func (c *implComposer) extractOccupancy(ctx context.Context, message string) (ExtractedEntity, bool, error) {
	if !reOccupancy.MatchString(message) {
		return ExtractedEntity{}, false, nil
	}

	stats, err := c.collab.OccupancyStats(ctx)
	if err != nil || stats == nil {
		return ExtractedEntity{}, false, err
	}

	text := fmt.Sprintf("- Công suất phòng: %.1f%% (%d/%d phòng đang có khách hoặc đã đặt, %d trống, %d bảo trì)",
		stats.Rate, stats.Occupied+stats.Reserved, stats.TotalRooms, stats.Available, stats.Maintenance)
	return ExtractedEntity{Kind: EntityOccupancy, Text: text}, true, nil
}

func (c *implComposer) extractRoleStats(ctx context.Context, message string) (ExtractedEntity, bool, error) {
	if !reRoleStats.MatchString(message) {
		return ExtractedEntity{}, false, nil
	}

	stats, err := c.collab.UserRoleStats(ctx)
	if err != nil || len(stats) == 0 {
		return ExtractedEntity{}, false, err
	}

	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		label, ok := roleLabels[s.Role]
		if !ok {
			label = s.Role
		}
		parts = append(parts, fmt.Sprintf("%s: %d", label, s.Count))
	}
	return ExtractedEntity{Kind: EntityRoleStats, Text: "- Số tài khoản theo vai trò: " + strings.Join(parts, ", ")}, true, nil
}

func (c *implComposer) extractStayDate(_ context.Context, message string) (ExtractedEntity, bool, error) {
	m, ok := c.dates.Find(message, c.now())
	if !ok {
		return ExtractedEntity{}, false, nil
	}

	text := fmt.Sprintf("- Ngày được nhắc đến: %q là %s (%s)",
		m.Phrase, m.Date.Format(DateFormatISO), weekdayNames[m.Date.Weekday()])
	return ExtractedEntity{Kind: EntityStayDate, Query: m.Phrase, Text: text}, true, nil
}

// lookupByPrefix tries the captured name and then shorter word prefixes of it,
// so "mùa hè có gì không" still finds "mùa hè".
func lookupByPrefix[T any](ctx context.Context, captured string, lookup func(context.Context, string) (*T, error)) (*T, string, error) {
	words := strings.Fields(captured)
	for n := len(words); n > 0; n-- {
		query := strings.Join(words[:n], " ")
		v, err := lookup(ctx, query)
		if err != nil {
			return nil, "", err
		}
		if v != nil {
			return v, query, nil
		}
	}
	return nil, "", nil
}

func firstGroup(m []string) string {
	for _, g := range m[min(1, len(m)):] {
		if g != "" {
			return g
		}
	}
	return ""
}
