package pdf

import "testing"

// a4Page builds an A4 portrait page whose lines sit at the given heights.
func a4Page(lines ...Line) Page {
	return Page{Number: 1, Width: 595.28, Height: 841.89, Lines: lines}
}

func TestWeekText(t *testing.T) {
	inside := 400.0 // well within the crop region vertically
	tests := []struct {
		name string
		page Page
		want string
	}{
		{
			name: "lot marker",
			page: a4Page(line(inside, Word{S: "LOT MER-2411", X: 200, Y: inside})),
			want: "LOT MER-2411",
		},
		{
			name: "week number",
			page: a4Page(
				line(inside+20, Word{S: "Colour label", X: 200, Y: inside + 20}),
				line(inside, Word{S: "W7 2025", X: 200, Y: inside}),
			),
			want: "W7 2025",
		},
		{
			name: "outside crop is ignored",
			page: a4Page(line(820, Word{S: "W42", X: 200, Y: 820})),
			want: DefaultWeekText,
		},
		{
			name: "words outside clip are trimmed from the line",
			page: a4Page(line(inside,
				Word{S: "W12", X: 200, Y: inside},
				Word{S: "margin", X: 5, Y: inside},
			)),
			want: "W12",
		},
		{
			name: "no marker",
			page: a4Page(line(inside, Word{S: "nothing here", X: 200, Y: inside})),
			want: DefaultWeekText,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekText(tt.page, DefaultCrop); got != tt.want {
				t.Errorf("WeekText() = %q, want %q", got, tt.want)
			}
		})
	}
}
