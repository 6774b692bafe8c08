package world

import "fmt"

// Phase is the match lifecycle. Won and Lost are the two terminal phases,
// so an ended match cannot also be waiting for a choice.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseAwaitingChoice
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseAwaitingChoice:
		return "awaiting_choice"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

func (p Phase) Ended() bool { return p == PhaseWon || p == PhaseLost }

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

func (p Phase) Outcome() Outcome {
	switch p {
	case PhaseWon:
		return OutcomeVictory
	case PhaseLost:
		return OutcomeDefeat
	default:
		return OutcomeNone
	}
}

type phaseEvent uint8

const (
	evStart phaseEvent = iota
	evLevelUp
	evChoiceMade
	evTimeUp
	evContact
)

func (e phaseEvent) String() string {
	return [...]string{"start", "level_up", "choice_made", "time_up", "contact"}[e]
}

// transition is the only place phases change.
func transition(cur Phase, ev phaseEvent) (Phase, error) {
	switch ev {
	case evStart:
		return PhaseActive, nil
	case evLevelUp:
		if cur == PhaseActive {
			return PhaseAwaitingChoice, nil
		}
	case evChoiceMade:
		if cur == PhaseAwaitingChoice {
			return PhaseActive, nil
		}
	case evTimeUp:
		if cur == PhaseActive || cur == PhaseAwaitingChoice {
			return PhaseWon, nil
		}
	case evContact:
		if cur == PhaseActive {
			return PhaseLost, nil
		}
	}
	return cur, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, ev, cur)
}

// MatchState is the per-match mutable state besides entities.
type MatchState struct {
	phase Phase

	Elapsed     float32
	SpawnAcc    float32
	AttackTimer float32

	Level    int
	XP       int
	XPToNext int

	bossTriggered map[int]struct{} // indices into Config.BossCheckpoints
}

func newMatchState(cfg Config) MatchState {
	return MatchState{
		Level:         1,
		XPToNext:      cfg.XPFirstThreshold,
		bossTriggered: make(map[int]struct{}, len(cfg.BossCheckpoints)),
	}
}

func (m *MatchState) Phase() Phase { return m.phase }

func (m *MatchState) fire(ev phaseEvent) error {
	next, err := transition(m.phase, ev)
	if err != nil {
		return err
	}
	m.phase = next
	return nil
}
