package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColor(0, 0, "SCORE", core.ColorGray)
	s.DrawTextColor(6, 0, "██", core.ColorCyan)
	s.DrawTextColor(0, 2, "ghost", core.ColorDim)

	out := RenderScreen(s)
	for _, want := range []string{"SCORE", "██", "ghost"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("rendered %d line breaks, want 2", lines)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	// Unknown colors render unstyled instead of dropping the text
	if got := styleFor(core.Color(200)).Render("x"); !strings.Contains(got, "x") {
		t.Errorf("styleFor(unknown).Render = %q", got)
	}
	for c := core.ColorDefault; c <= core.ColorDim; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
