// ABOUTME: Tests for FooterModel bank widget and counter line
// ABOUTME: Compares ANSI-stripped output

package btea

import (
	"strings"
	"testing"

	"github.com/mauromedda/pebbletree/pkg/tui/canvas"
)

func TestFooterModel_View(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		footer  FooterModel
		want    []string
		notWant []string
	}{
		{
			name:    "fresh game",
			footer:  NewFooterModel("?").WithBank(4, 4).WithGame(3, 0, false, true, false).WithWidth(60),
			want:    []string{"Bank oooo 4", "depth 3", "moves 0", "? help"},
			notWant: []string{"undo available", "solved", "not enough"},
		},
		{
			name:   "spent pebbles",
			footer: NewFooterModel("?").WithBank(1, 4).WithGame(3, 5, true, true, false).WithWidth(60),
			want:   []string{"Bank o... 1", "moves 5", "undo available"},
		},
		{
			name:   "unsolvable",
			footer: NewFooterModel("?").WithBank(0, 1).WithGame(2, 1, true, false, false),
			want:   []string{"not enough pebbles left"},
		},
		{
			name:    "won",
			footer:  NewFooterModel("?").WithBank(0, 2).WithGame(2, 3, true, true, true),
			want:    []string{"solved"},
			notWant: []string{"not enough"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := canvas.StripANSI(tt.footer.View())
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("View() = %q; want %q", got, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("View() = %q; should not contain %q", got, w)
				}
			}
		})
	}
}

func TestFooterModel_RightAlignsHelp(t *testing.T) {
	t.Parallel()

	got := canvas.StripANSI(NewFooterModel("?").WithBank(2, 2).WithGame(2, 0, false, true, false).WithWidth(50).View())
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d; want 2", len(lines))
	}
	if w := canvas.Width(lines[1]); w != 50 {
		t.Errorf("line 2 width = %d; want 50", w)
	}
	if !strings.HasSuffix(lines[1], "? help") {
		t.Errorf("line 2 = %q; want help key at the end", lines[1])
	}
}
