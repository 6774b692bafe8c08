// Package hud holds display text shared by the ebiten and terminal
// frontends.
package hud

import (
	"fmt"
	"math"

	"horde-arena/internal/world"
)

// FormatRemaining renders seconds left as mm:ss, truncating fractions.
func FormatRemaining(sec float32) string {
	if sec < 0 || math.IsNaN(float64(sec)) {
		sec = 0
	}
	s := int(sec)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// StatusLine is the one-line HUD: time left, level, xp and kills.
func StatusLine(s world.Snapshot) string {
	return fmt.Sprintf("%s   LV %d   XP %d/%d   Kills %d",
		FormatRemaining(s.Remaining),
		s.Level, s.XP, s.XPToNext,
		s.Stats.EnemiesKilled,
	)
}

// OverlayLines returns the modal text for the current phase, or nil while
// the match is simply running.
func OverlayLines(s world.Snapshot, startHint string) []string {
	switch s.Phase {
	case world.PhaseIdle:
		return []string{
			"SURVIVE THE HORDE",
			"",
			"Move to dodge, attacks are automatic.",
			startHint,
		}
	case world.PhaseAwaitingChoice:
		lines := []string{fmt.Sprintf("LEVEL %d - choose an upgrade", s.Level), ""}
		for i, o := range s.Offer {
			lines = append(lines, fmt.Sprintf("[%d] %s", i+1, o.Title), "     "+o.Desc)
		}
		if s.PendingChoices > 1 {
			lines = append(lines, "", fmt.Sprintf("%d more choices queued", s.PendingChoices-1))
		}
		return lines
	case world.PhaseWon, world.PhaseLost:
		title := "YOU SURVIVED"
		if s.Outcome == world.OutcomeDefeat {
			title = "OVERRUN"
		}
		return []string{
			title,
			"",
			fmt.Sprintf("Time: %.1fs   Level: %d", s.Elapsed, s.Level),
			fmt.Sprintf("Kills: %d (bosses %d)   XP: %d", s.Stats.EnemiesKilled, s.Stats.BossesKilled, s.Stats.XPCollected),
			"",
			startHint,
		}
	default:
		return nil
	}
}
