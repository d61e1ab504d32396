package hotelctx

import "testing"

func TestFormatVND(t *testing.T) {
	tests := map[int64]string{
		0:        "0đ",
		500:      "500đ",
		50000:    "50.000đ",
		1200000:  "1.200.000đ",
		-2500000: "-2.500.000đ",
	}
	for in, want := range tests {
		if got := FormatVND(in); got != want {
			t.Errorf("FormatVND(%d) = %q, want %q", in, got, want)
		}
	}
}
