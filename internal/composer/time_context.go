package composer

import "fmt"

var weekdayNames = [...]string{"Chủ nhật", "Thứ hai", "Thứ ba", "Thứ tư", "Thứ năm", "Thứ sáu", "Thứ bảy"}

// timeContext renders today, the Monday-Sunday week and tomorrow in the hotel timezone.
func (c *implComposer) timeContext() string {
	now := c.now().In(c.dates.Location())

	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		weekdayNames[now.Weekday()],
		now.Format("15:04"),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		tomorrow.Format(DateFormatISO),
	)
}
