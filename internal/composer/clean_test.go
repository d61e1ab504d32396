package composer

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCleanGeneratedText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain text trimmed",
			raw:  "  Khách sạn có hồ bơi ngoài trời.  \n",
			want: "Khách sạn có hồ bơi ngoài trời.",
		},
		{
			name: "code fence stripped",
			raw:  "```\nPhòng Deluxe giá 1.200.000đ\n```",
			want: "Phòng Deluxe giá 1.200.000đ",
		},
		{
			name: "json text field",
			raw:  "```json\n{\"text\": \"Chào mừng quý khách!\"}\n```",
			want: "Chào mừng quý khách!",
		},
		{
			name: "json message field",
			raw:  `{"message": "Vui lòng liên hệ lễ tân."}`,
			want: "Vui lòng liên hệ lễ tân.",
		},
		{
			name: "json response field",
			raw:  `{"response": "Nhà hàng mở cửa lúc 6 giờ."}`,
			want: "Nhà hàng mở cửa lúc 6 giờ.",
		},
		{
			name: "field priority",
			raw:  `{"response": "phản hồi dài hơn", "text": "văn bản ưu tiên"}`,
			want: "văn bản ưu tiên",
		},
		{
			name: "json without known field kept",
			raw:  `{"answer": "không có trường"}`,
			want: `{"answer": "không có trường"}`,
		},
		{
			name: "malformed json kept",
			raw:  `{"text": "thiếu ngoặc"`,
			want: `{"text": "thiếu ngoặc"`,
		},
		{
			name: "nested json unwrapped",
			raw:  `{"text": "{\"message\": \"Lồng nhau hai lớp\"}"}`,
			want: "Lồng nhau hai lớp",
		},
		{
			name: "empty",
			raw:  "",
			want: ApologyText,
		},
		{
			name: "too short",
			raw:  "OK ạ",
			want: ApologyText,
		},
		{
			name: "short after extraction",
			raw:  `{"text": "Có"}`,
			want: ApologyText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanGeneratedText(tt.raw); got != tt.want {
				t.Errorf("CleanGeneratedText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProperty_CleanGeneratedTextIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("cleaning twice equals cleaning once", prop.ForAll(
		func(s string) bool {
			once := CleanGeneratedText(s)
			return CleanGeneratedText(once) == once
		},
		gen.AnyString(),
	))

	wrapped := gen.OneGenOf(
		gen.AlphaString().Map(func(s string) string { return "```json\n{\"text\": \"" + s + "\"}\n```" }),
		gen.AlphaString().Map(func(s string) string { return "{\"message\": \"```" + s + "```\"}" }),
		gen.AlphaString().Map(func(s string) string { return "   " + s + "\n```" }),
	)
	properties.Property("idempotent on fenced and json wrapped output", prop.ForAll(
		func(s string) bool {
			once := CleanGeneratedText(s)
			return CleanGeneratedText(once) == once && once != ""
		},
		wrapped,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
