package donation

import (
	"testing"

	"github.com/SiddharthChaturvedii/FoodView/domain"
)

func TestVolunteerLevelFor(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  string
	}{
		{"zero score", 0, domain.LevelBronze},
		{"just below silver", 9, domain.LevelBronze},
		{"silver threshold", 10, domain.LevelSilver},
		{"just below gold", 49, domain.LevelSilver},
		{"gold threshold", 50, domain.LevelGold},
		{"well past gold", 500, domain.LevelGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VolunteerLevelFor(tt.score); got != tt.want {
				t.Errorf("VolunteerLevelFor(%d) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}
