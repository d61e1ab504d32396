package composer

// Log prefixes
const (
	LogPrefixCompose  = "internal.composer.compose"
	LogPrefixExtract  = "internal.composer.extract"
	LogPrefixGenerate = "internal.composer.generate"
)

// Defaults
const (
	DefaultHistoryLimit       = 10
	DefaultExtractConcurrency = 4
	MinGeneratedLength        = 10
	DateFormatISO             = "2006-01-02"
)

// Intent keys for quick replies
const (
	KeyHotelPrompt  = "hotel_prompt"
	KeyDirectPrompt = "direct_prompt"
	KeyBooking      = "booking"
	KeyPricing      = "pricing"
	KeyGeneral      = "general"
)

// User facing texts
const (
	ApologyText      = "Xin lỗi, tôi chưa thể trả lời câu hỏi này. Bạn vui lòng hỏi lại theo cách khác nhé."
	FallbackTemplate = "Xin lỗi, hệ thống trợ lý đang gặp sự cố tạm thời. Vui lòng thử lại sau hoặc liên hệ lễ tân qua số %s để được hỗ trợ."
)

// Prompt sections
const (
	PromptPersona = `Bạn là trợ lý ảo của khách sạn, hỗ trợ khách hàng, lễ tân và quản lý.
Trả lời bằng tiếng Việt, ngắn gọn, lịch sự và chỉ dựa trên dữ liệu được cung cấp bên dưới.
Nếu không có dữ liệu, hãy nói rõ là bạn chưa có thông tin và gợi ý liên hệ lễ tân.`

	PromptChatInstructions = `YÊU CẦU TRẢ LỜI:
1. Ưu tiên DỮ LIỆU CỤ THỂ nếu có
2. Không bịa đặt giá, số phòng hoặc khuyến mãi
3. Trả lời dạng văn bản thuần, không dùng JSON hay markdown code block`

	PromptDirectInstructions = `Thực hiện yêu cầu trên một cách đầy đủ. Trả lời dạng văn bản thuần, không dùng JSON hay markdown code block.`

	PromptSpecificDataHeader = "DỮ LIỆU CỤ THỂ:"
	PromptHistoryPrefix      = "Lịch sử hội thoại gần đây:"
	PromptUserMessage        = "Câu hỏi của người dùng: %q"
	PromptDirectRequest      = "Yêu cầu: %s"

	TimeContextTemplate = `THỜI GIAN HIỆN TẠI:
- Hôm nay: %s (%s), %s
- Tuần này: từ %s đến %s
- Ngày mai: %s`
)

// History speaker labels
const (
	LabelUser      = "Người dùng"
	LabelAssistant = "Trợ lý"
)
