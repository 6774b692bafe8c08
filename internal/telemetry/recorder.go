package telemetry

import (
	"time"

	"horde-arena/internal/world"
)

// Recorder turns successive snapshots into sink events by diffing the
// match statistics, so the simulation itself never talks to the sink.
type Recorder struct {
	sink  *Sink
	match string
	last  world.Stats
}

func NewRecorder(s *Sink) *Recorder {
	return &Recorder{sink: s}
}

// Observe is called once per frame after the world ticked.
func (r *Recorder) Observe(snap world.Snapshot, dt float32) {
	now := time.Now()

	if snap.MatchID != r.match {
		r.match = snap.MatchID
		r.last = world.Stats{}
		r.sink.Emit(Event{Kind: KindMatch, Match: snap.MatchID, At: now})
	}
	if snap.Phase == world.PhaseIdle {
		return
	}

	cur := snap.Stats
	if d := cur.EnemiesKilled - r.last.EnemiesKilled; d > 0 {
		r.sink.Emit(Event{Kind: KindKill, I: d, At: now})
	}
	if d := cur.BossesKilled - r.last.BossesKilled; d > 0 {
		r.sink.Emit(Event{Kind: KindBossKill, I: d, At: now})
	}
	if d := cur.LevelUps - r.last.LevelUps; d > 0 {
		r.sink.Emit(Event{Kind: KindLevelUp, I: d, At: now})
	}
	r.last = cur

	if snap.Phase == world.PhaseActive {
		r.sink.Emit(Event{Kind: KindFrame, F: dt, At: now})
	}
}
