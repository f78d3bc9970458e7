package session

import "github.com/younwookim/starship/internal/infrastructure/config"

// TierFor derives the difficulty tier from elapsed seconds and score:
// one tier per TierSeconds survived or per TierScore earned, whichever is
// higher, capped at MaxTier
func TierFor(elapsed float64, score int, d config.DifficultyConfig) int {
	tier := 0
	if d.TierSeconds > 0 {
		tier = int(elapsed / d.TierSeconds)
	}
	if d.TierScore > 0 {
		if byScore := score / d.TierScore; byScore > tier {
			tier = byScore
		}
	}
	if d.MaxTier > 0 && tier > d.MaxTier {
		tier = d.MaxTier
	}
	return tier
}
