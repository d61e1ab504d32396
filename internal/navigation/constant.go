package navigation

// User facing messages
const (
	MsgNavigate         = "Đang chuyển đến trang %s..."
	MsgPermissionDenied = "Xin lỗi, bạn không có quyền truy cập trang %s. Vui lòng liên hệ quản lý nếu bạn cần quyền truy cập."
	MsgAvailableRoutes  = "Tôi chưa xác định được trang bạn muốn đến. Bạn có thể truy cập các trang sau:"
	MsgNoRoutes         = "Hiện không có trang nào bạn có thể truy cập."
)
