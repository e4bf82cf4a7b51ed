package sonar

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/boshu2/aoc2021/internal/lines"
)

const sweep = `199
200
208
210
200
207
240
269
260
263
`

func report(values ...int) string {
	var sb strings.Builder
	for _, v := range values {
		fmt.Fprintf(&sb, "%d\n", v)
	}
	return sb.String()
}

func TestCountIncreases_Sweep(t *testing.T) {
	got, err := CountIncreases(strings.NewReader(sweep))
	if err != nil {
		t.Fatalf("CountIncreases failed: %v", err)
	}
	if got != 7 {
		t.Errorf("CountIncreases = %d, want 7", got)
	}
}

func TestCountWindowIncreases_Sweep(t *testing.T) {
	got, err := CountWindowIncreases(strings.NewReader(sweep), DefaultWidth)
	if err != nil {
		t.Fatalf("CountWindowIncreases failed: %v", err)
	}
	if got != 5 {
		t.Errorf("CountWindowIncreases = %d, want 5", got)
	}
}

func TestCountIncreases_EdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"empty", nil, 0},
		{"single", []int{5}, 0},
		{"first line never counts", []int{-1000}, 0},
		{"equal is not larger", []int{3, 3, 3}, 0},
		{"strictly increasing", []int{1, 2, 3, 4}, 3},
		{"decreasing", []int{4, 3, 2, 1}, 0},
		{"negatives", []int{-5, -3, -4, 0}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountIncreases(strings.NewReader(report(tt.values...)))
			if err != nil {
				t.Fatalf("CountIncreases failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("CountIncreases(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestCountWindowIncreases_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"empty", nil, 0},
		{"three values", []int{1, 2, 3}, 0},
		{"four values increasing end", []int{1, 9, 9, 2}, 1},
		{"four values equal ends", []int{2, 9, 9, 2}, 0},
		{"four values decreasing end", []int{3, 0, 0, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountWindowIncreases(strings.NewReader(report(tt.values...)), DefaultWidth)
			if err != nil {
				t.Fatalf("CountWindowIncreases failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("CountWindowIncreases(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestCountWindowIncreases_InvalidWidth(t *testing.T) {
	_, err := CountWindowIncreases(strings.NewReader(sweep), 0)
	if !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("err = %v, want ErrInvalidWidth", err)
	}
}

func TestCount_MalformedLineAborts(t *testing.T) {
	input := "199\n200\nbanana\n208\n"

	if _, err := CountIncreases(strings.NewReader(input)); !errors.Is(err, lines.ErrNotInteger) {
		t.Errorf("CountIncreases err = %v, want ErrNotInteger", err)
	}

	_, err := CountWindowIncreases(strings.NewReader(input), DefaultWidth)
	var pe *lines.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("CountWindowIncreases err = %v, want *lines.ParseError", err)
	}
	if pe.Line != 3 {
		t.Errorf("ParseError.Line = %d, want 3", pe.Line)
	}
}

// adjacentIncreases is the definition CountIncreases must agree with.
func adjacentIncreases(values []int) int {
	n := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[i-1] {
			n++
		}
	}
	return n
}

// sumIncreases compares full window sums without the end-element shortcut.
func sumIncreases(values []int, width int) int {
	n := 0
	prev := 0
	for i := 0; i+width <= len(values); i++ {
		sum := 0
		for _, v := range values[i : i+width] {
			sum += v
		}
		if i > 0 && sum > prev {
			n++
		}
		prev = sum
	}
	return n
}

func TestTrends_MatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2021))
	for trial := 0; trial < 200; trial++ {
		values := make([]int, rng.Intn(40))
		for i := range values {
			values[i] = rng.Intn(200) - 100
		}

		var trend Trend
		for _, v := range values {
			trend.Push(v)
		}
		if got, want := trend.Count(), adjacentIncreases(values); got != want {
			t.Fatalf("Trend(%v) = %d, want %d", values, got, want)
		}

		for width := 1; width <= 4; width++ {
			wt, err := NewWindowTrend(width)
			if err != nil {
				t.Fatal(err)
			}
			for _, v := range values {
				wt.Push(v)
				if wt.window.size > width+1 {
					t.Fatalf("window grew to %d for width %d", wt.window.size, width)
				}
			}
			if got, want := wt.Count(), sumIncreases(values, width); got != want {
				t.Fatalf("WindowTrend(%v, width=%d) = %d, want %d", values, width, got, want)
			}
		}
	}
}

func TestWindowTrend_WidthOneMatchesTrend(t *testing.T) {
	got, err := CountWindowIncreases(strings.NewReader(sweep), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Errorf("width 1 = %d, want 7", got)
	}
}

// For width w the count equals the number of i in [0, n-w) with
// a[i+w] > a[i]; the summed middle terms cancel.
func TestWindowTrend_ComparesWindowEnds(t *testing.T) {
	values := []int{199, 200, 208, 210, 200, 207, 240, 269, 260, 263}
	want := 0
	for i := 0; i+DefaultWidth < len(values); i++ {
		if values[i+DefaultWidth] > values[i] {
			want++
		}
	}
	if want != 5 {
		t.Fatalf("end comparison on sweep = %d, want 5", want)
	}
	got, err := CountWindowIncreases(strings.NewReader(sweep), DefaultWidth)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("CountWindowIncreases = %d, want %d", got, want)
	}
}
