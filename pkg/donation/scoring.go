package donation

import "github.com/SiddharthChaturvedii/FoodView/domain"

const (
	scoreThresholdGold   = 50
	scoreThresholdSilver = 10
)

// VolunteerLevelFor maps a volunteer score onto a level. Platinum is part
// of the level set but no threshold reaches it; it can only be assigned
// out of band.
func VolunteerLevelFor(score int) string {
	switch {
	case score >= scoreThresholdGold:
		return domain.LevelGold
	case score >= scoreThresholdSilver:
		return domain.LevelSilver
	default:
		return domain.LevelBronze
	}
}
