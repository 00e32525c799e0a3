package ops

import (
	"testing"

	"github.com/greenrows/currex/internal/curriculum"
)

func TestBreakdown(t *testing.T) {
	chunks := []curriculum.Chunk{
		{Module: "Solar"},
		{Module: "Solar"},
		{Module: "Architecture"},
		{Module: "Permaculture"}, // outside the fixed list
	}
	modules := []string{"Architecture", "Solar", "Insulation"}

	counts := Breakdown(chunks, modules)

	if len(counts) != 3 {
		t.Fatalf("counts = %v, want 3 entries", counts)
	}
	if counts["Solar"] != 2 {
		t.Errorf("Solar = %d, want 2", counts["Solar"])
	}
	if counts["Architecture"] != 1 {
		t.Errorf("Architecture = %d, want 1", counts["Architecture"])
	}
	if counts["Insulation"] != 0 {
		t.Errorf("Insulation = %d, want 0", counts["Insulation"])
	}
	if _, ok := counts["Permaculture"]; ok {
		t.Error("modules outside the fixed list should not appear")
	}
}

func TestBreakdown_Empty(t *testing.T) {
	counts := Breakdown(nil, []string{"Solar"})
	if counts["Solar"] != 0 {
		t.Errorf("Solar = %d, want 0", counts["Solar"])
	}
}
