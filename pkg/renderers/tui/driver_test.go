package tui

import (
	"testing"

	"github.com/AlecAivazis/survey/v2/core"
)

func TestSelectedIndexUsesPosition(t *testing.T) {
	options := []string{"Back", "Tug", "Back"}

	cases := []struct {
		name   string
		answer core.OptionAnswer
		want   int
	}{
		{name: "catalog entry named like the menu", answer: core.OptionAnswer{Value: "Back", Index: 0}, want: 0},
		{name: "menu entry", answer: core.OptionAnswer{Value: "Back", Index: 2}, want: 2},
		{name: "plain entry", answer: core.OptionAnswer{Value: "Tug", Index: 1}, want: 1},
		{name: "out of range", answer: core.OptionAnswer{Value: "Back", Index: 3}, want: -1},
		{name: "mismatched label", answer: core.OptionAnswer{Value: "Tug", Index: 0}, want: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := selectedIndex(options, tc.answer); got != tc.want {
				t.Fatalf("selectedIndex = %d, want %d", got, tc.want)
			}
		})
	}
}
