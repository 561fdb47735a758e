package series

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "plain date",
			input: "6/15/2024",
			want:  time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "zero padded",
			input: "02/05/2024",
			want:  time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "leap day",
			input: "02/29/2024",
			want:  time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			input: " 1/2/2024 ",
			want:  time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "day overflows month",
			input: "2/30/2024",
			ok:    false,
		},
		{
			name:  "leap day on non-leap year",
			input: "2/29/2023",
			ok:    false,
		},
		{
			name:  "month out of range",
			input: "13/1/2024",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
		{
			name:  "two parts",
			input: "6/2024",
			ok:    false,
		},
		{
			name:  "four parts",
			input: "6/15/20/24",
			ok:    false,
		},
		{
			name:  "non numeric part",
			input: "jun/15/2024",
			ok:    false,
		},
		{
			name:  "wrong separator",
			input: "6-15-2024",
			ok:    false,
		},
		{
			name:  "day zero",
			input: "6/0/2024",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if tt.ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
