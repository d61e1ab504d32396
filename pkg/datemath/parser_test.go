package datemath_test

import (
	"testing"
	"time"

	"hotel-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Ngày mai",
			relative: "ngày mai",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Ngày kia",
			relative: "Ngày kia",
			want:     startOfBase.AddDate(0, 0, 2),
		},
		{
			name:     "Tuần sau",
			relative: "tuần sau",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{
			name:     "Trong 3 ngày",
			relative: "trong 3 ngày",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "2 tuần nữa",
			relative: "2 tuần nữa",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "Thứ hai tới (from Wed)",
			relative: "thứ hai tới",
			want:     startOfBase.AddDate(0, 0, 5),
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase, // falls back to startOfDay(base)
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestFind(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		text       string
		wantPhrase string
		want       time.Time
		wantOK     bool
	}{
		{
			name:       "Vietnamese tomorrow in sentence",
			text:       "Tôi muốn đặt phòng ngày mai cho 2 người",
			wantPhrase: "ngày mai",
			want:       startOfBase.AddDate(0, 0, 1),
			wantOK:     true,
		},
		{
			name:       "Duration wins over bare word",
			text:       "hôm nay tôi hỏi, 3 ngày nữa tôi đến",
			wantPhrase: "3 ngày nữa",
			want:       startOfBase.AddDate(0, 0, 3),
			wantOK:     true,
		},
		{
			name:       "English next weekday",
			text:       "Any room next friday?",
			wantPhrase: "next friday",
			want:       startOfBase.AddDate(0, 0, 2),
			wantOK:     true,
		},
		{
			name:       "Vietnamese weekday",
			text:       "còn phòng chủ nhật này không",
			wantPhrase: "chủ nhật này",
			want:       startOfBase.AddDate(0, 0, 4),
			wantOK:     true,
		},
		{
			name:   "No date",
			text:   "giá phòng deluxe",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Find(tt.text, baseTime)
			if ok != tt.wantOK {
				t.Fatalf("Find() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Phrase != tt.wantPhrase {
				t.Errorf("Find() phrase = %q, want %q", got.Phrase, tt.wantPhrase)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("Find() date = %v, want %v", got.Date, tt.want)
			}
		})
	}
}
