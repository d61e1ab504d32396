package composer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-assistant/internal/model"
)

func TestComposeChatPrompt(t *testing.T) {
	c := newTestComposer(t, newMockCollaborator())

	history := []model.Message{
		{Role: model.SpeakerUser, Content: "tin nhắn cũ nhất"},
		{Role: model.SpeakerAssistant, Content: "   "},
		{Role: model.SpeakerAssistant, Content: "Chào bạn"},
		{Role: model.SpeakerUser, Content: "Cho hỏi giá phòng"},
	}

	got, err := c.ComposeChatPrompt(context.Background(), "Phòng số 201 còn trống không?", history)
	require.NoError(t, err)

	assert.True(t, got.HasSpecificData)
	require.Len(t, got.Entities, 1)
	assert.Equal(t, EntityRoom, got.Entities[0].Kind)
	assert.Equal(t, "201", got.Entities[0].Query)

	for _, want := range []string{
		PromptPersona,
		"STATIC FACTS",
		"LOCAL FACTS",
		"DYNAMIC FACTS",
		"Hôm nay: 2026-07-15 (Thứ tư), 10:30",
		"Tuần này: từ 2026-07-13 đến 2026-07-19",
		PromptSpecificDataHeader,
		"Phòng 201: loại Deluxe, tầng 2, giá 1.200.000đ/đêm",
		"1. Trợ lý: Chào bạn",
		"2. Người dùng: Cho hỏi giá phòng",
		`"Phòng số 201 còn trống không?"`,
	} {
		assert.Contains(t, got.Prompt, want)
	}
	assert.NotContains(t, got.Prompt, "tin nhắn cũ nhất")
}

func TestComposeChatPrompt_NoSpecificData(t *testing.T) {
	c := newTestComposer(t, newMockCollaborator())

	got, err := c.ComposeChatPrompt(context.Background(), "xin chào", nil)
	require.NoError(t, err)

	assert.False(t, got.HasSpecificData)
	assert.Empty(t, got.Entities)
	assert.NotContains(t, got.Prompt, PromptSpecificDataHeader)
	assert.NotContains(t, got.Prompt, PromptHistoryPrefix)
}

func TestComposeChatPrompt_CollaboratorDown(t *testing.T) {
	collab := newMockCollaborator()
	collab.failAll = true
	c := newTestComposer(t, collab)

	got, err := c.ComposeChatPrompt(context.Background(), "phòng số 201 và công suất", nil)
	require.NoError(t, err)

	assert.False(t, got.HasSpecificData)
	assert.Empty(t, got.Entities)
	assert.NotContains(t, got.Prompt, "STATIC FACTS")
	assert.Contains(t, got.Prompt, PromptPersona)
}

func TestComposeChatPrompt_CollaboratorDownKeepsStayDate(t *testing.T) {
	collab := newMockCollaborator()
	collab.failAll = true
	c := newTestComposer(t, collab)

	got, err := c.ComposeChatPrompt(context.Background(), "phòng số 201 và công suất hôm nay", nil)
	require.NoError(t, err)

	assert.True(t, got.HasSpecificData)
	require.NotEmpty(t, got.Entities)
	for _, e := range got.Entities {
		assert.Equal(t, EntityStayDate, e.Kind)
	}
	assert.Equal(t, "hôm nay", got.Entities[0].Query)
	assert.Contains(t, got.Prompt, PromptSpecificDataHeader)
}

func TestComposeChatPrompt_Canceled(t *testing.T) {
	c := newTestComposer(t, newMockCollaborator())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ComposeChatPrompt(ctx, "phòng số 201", nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestComposeDirectPrompt(t *testing.T) {
	collab := newMockCollaborator()
	c := newTestComposer(t, collab)

	got, err := c.ComposeDirectPrompt(context.Background(), "Viết email giới thiệu dịch vụ spa", nil)
	require.NoError(t, err)

	assert.True(t, got.HasSpecificData)
	assert.Contains(t, got.Prompt, "Yêu cầu: Viết email giới thiệu dịch vụ spa")
	assert.Contains(t, got.Prompt, "Dịch vụ Spa: Massage, giá 500.000đ/lượt")
	assert.NotContains(t, got.Prompt, PromptPersona)
	assert.NotContains(t, got.Prompt, "STATIC FACTS")
	assert.Contains(t, got.Prompt, "THỜI GIAN HIỆN TẠI")
}

func TestExtract_Order(t *testing.T) {
	c := newTestComposer(t, newMockCollaborator())

	entities, err := c.extract(context.Background(),
		"ngày mai tôi muốn biết khuyến mãi mùa hè có gì, phòng số 201, công suất và thống kê người dùng")
	require.NoError(t, err)

	kinds := make([]string, len(entities))
	for i, e := range entities {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []string{EntityRoom, EntityPromotion, EntityOccupancy, EntityRoleStats, EntityStayDate}, kinds)

	assert.Equal(t, "mùa hè", entities[1].Query)
	assert.Contains(t, entities[3].Text, "Quản lý: 2, Khách hàng: 40")
	assert.Contains(t, entities[4].Text, "2026-07-16")
}

func TestExtract_UnknownEntities(t *testing.T) {
	c := newTestComposer(t, newMockCollaborator())

	entities, err := c.extract(context.Background(), "phòng số 999 và dịch vụ bay lượn")
	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestFallbackText(t *testing.T) {
	c := newTestComposer(t, newMockCollaborator())
	assert.True(t, strings.Contains(c.FallbackText(), "1900 1234"))
}

func TestQuickReplies(t *testing.T) {
	c := newTestComposer(t, newMockCollaborator())

	tests := []struct {
		name      string
		message   string
		intentKey string
		want      string
	}{
		{name: "room topic first", message: "đặt phòng deluxe", intentKey: KeyBooking, want: "Xem phòng trống"},
		{name: "promotion topic", message: "có ưu đãi gì", intentKey: KeyGeneral, want: "Khuyến mãi đang áp dụng"},
		{name: "report topic", message: "doanh thu tháng", intentKey: KeyHotelPrompt, want: "Doanh thu hôm nay"},
		{name: "intent key", message: "xin chào", intentKey: KeyDirectPrompt, want: "Viết thêm"},
		{name: "pricing key", message: "xin chào", intentKey: KeyPricing, want: "Bảng giá phòng"},
		{name: "unknown key", message: "xin chào", intentKey: "nope", want: "Giới thiệu khách sạn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.QuickReplies(tt.message, tt.intentKey)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got[0])
		})
	}

	first := c.QuickReplies("xin chào", KeyGeneral)
	first[0] = "mutated"
	assert.Equal(t, "Giới thiệu khách sạn", c.QuickReplies("xin chào", KeyGeneral)[0])
}
