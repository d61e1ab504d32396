package composer

import "strings"

type topicReplies struct {
	keywords []string
	replies  []string
}

// topics are scanned in order; the first topic mentioned in the message wins.
var topics = []topicReplies{
	{
		keywords: []string{"phòng", "room"},
		replies:  []string{"Xem phòng trống", "Giá các loại phòng", "Tiện nghi phòng"},
	},
	{
		keywords: []string{"khuyến mãi", "ưu đãi", "giảm giá", "promotion"},
		replies:  []string{"Khuyến mãi đang áp dụng", "Điều kiện ưu đãi", "Đặt phòng với ưu đãi"},
	},
	{
		keywords: []string{"dịch vụ", "service", "spa", "nhà hàng"},
		replies:  []string{"Dịch vụ spa", "Giờ mở cửa nhà hàng", "Đưa đón sân bay"},
	},
	{
		keywords: []string{"đặt", "booking", "book"},
		replies:  []string{"Đặt phòng ngay", "Chính sách hủy phòng", "Giờ nhận phòng"},
	},
	{
		keywords: []string{"báo cáo", "doanh thu", "report"},
		replies:  []string{"Doanh thu hôm nay", "Công suất phòng", "Báo cáo tháng"},
	},
}

var intentReplies = map[string][]string{
	KeyHotelPrompt:  {"Thông tin khách sạn", "Xem phòng", "Khuyến mãi"},
	KeyDirectPrompt: {"Viết thêm", "Tóm tắt lại", "Dịch sang tiếng Anh"},
	KeyBooking:      {"Đặt phòng ngay", "Kiểm tra đặt phòng", "Hủy đặt phòng"},
	KeyPricing:      {"Bảng giá phòng", "Khuyến mãi hiện có", "Phụ thu"},
	KeyGeneral:      {"Giới thiệu khách sạn", "Xem phòng", "Liên hệ lễ tân"},
}

// QuickReplies scans message for a topic, else falls back to the intentKey table
// (unknown keys use "general"). Always returns a fresh slice.
func (c *implComposer) QuickReplies(message, intentKey string) []string {
	lower := strings.ToLower(message)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return append([]string(nil), t.replies...)
			}
		}
	}

	replies, ok := intentReplies[intentKey]
	if !ok {
		replies = intentReplies[KeyGeneral]
	}
	return append([]string(nil), replies...)
}
