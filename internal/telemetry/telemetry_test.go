package telemetry

import (
	"testing"
	"time"

	"horde-arena/internal/world"
)

func TestSinkBatchesEvents(t *testing.T) {
	out := make(chan Batch, 8)
	s := newSink(10*time.Millisecond, func(b Batch) {
		out <- b
	})
	defer s.Close()

	s.In <- Event{Kind: KindMatch, Match: "m-1", At: time.Now()}
	s.In <- Event{Kind: KindKill, I: 2, At: time.Now()}
	s.In <- Event{Kind: KindBossKill, I: 1, At: time.Now()}
	s.In <- Event{Kind: KindLevelUp, I: 1, At: time.Now()}
	s.In <- Event{Kind: KindFrame, F: 0.016, At: time.Now()}
	s.In <- Event{Kind: KindFrame, F: 0.018, At: time.Now()}

	deadline := time.After(700 * time.Millisecond)
	for {
		select {
		case b := <-out:
			// Ignore empty periodic flushes; validate the first non-empty batch.
			if b.empty() {
				continue
			}

			if b.Match != "m-1" {
				t.Fatalf("match mismatch: got %q want %q", b.Match, "m-1")
			}
			if b.Kills != 2 || b.BossKills != 1 || b.LevelUps != 1 {
				t.Fatalf("counts mismatch: %+v", b)
			}
			if b.Frames != 2 {
				t.Fatalf("frames mismatch: got %d want %d", b.Frames, 2)
			}
			if !approxEqual(b.AvgDt, 0.017) {
				t.Fatalf("avg dt mismatch: got %.6f want %.6f", b.AvgDt, 0.017)
			}
			return

		case <-deadline:
			t.Fatal("timed out waiting for telemetry batch")
		}
	}
}

func TestSinkCloseFlushesBuffered(t *testing.T) {
	var got []Batch
	s := newSink(time.Hour, func(b Batch) {
		got = append(got, b)
	})

	s.In <- Event{Kind: KindKill, I: 3, At: time.Now()}
	s.Close()

	if len(got) != 1 || got[0].Kills != 3 {
		t.Fatalf("final flush: got %+v", got)
	}
}

func TestSinkCloseIsIdempotent(t *testing.T) {
	s := newSink(10*time.Millisecond, nil)

	done := make(chan struct{})
	go func() {
		s.Close()
		s.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("sink close blocked")
	}
}

func TestEmitDropsWhenFull(t *testing.T) {
	s := &Sink{In: make(chan Event, 1)}

	s.Emit(Event{Kind: KindFrame})
	s.Emit(Event{Kind: KindFrame})
	s.Emit(Event{Kind: KindFrame})

	if n := s.takeDropped(); n != 2 {
		t.Fatalf("dropped: got %d want 2", n)
	}
}

func TestRecorderEmitsStatDeltas(t *testing.T) {
	s := &Sink{In: make(chan Event, 16)}
	r := NewRecorder(s)

	snap := world.Snapshot{MatchID: "a", Phase: world.PhaseActive}
	r.Observe(snap, 0.016)

	snap.Stats.EnemiesKilled = 3
	snap.Stats.LevelUps = 1
	r.Observe(snap, 0.016)

	// unchanged stats only produce a frame
	r.Observe(snap, 0.016)

	var kills, levels, frames, matches int
	for len(s.In) > 0 {
		ev := <-s.In
		switch ev.Kind {
		case KindMatch:
			matches++
		case KindKill:
			kills += ev.I
		case KindLevelUp:
			levels += ev.I
		case KindFrame:
			frames++
		}
	}
	if matches != 1 || kills != 3 || levels != 1 || frames != 3 {
		t.Fatalf("events: matches=%d kills=%d levels=%d frames=%d", matches, kills, levels, frames)
	}
}

func TestRecorderResetsOnNewMatch(t *testing.T) {
	s := &Sink{In: make(chan Event, 16)}
	r := NewRecorder(s)

	r.Observe(world.Snapshot{MatchID: "a", Phase: world.PhaseActive, Stats: world.Stats{EnemiesKilled: 10}}, 0)
	for len(s.In) > 0 {
		<-s.In
	}

	r.Observe(world.Snapshot{MatchID: "b", Phase: world.PhaseActive, Stats: world.Stats{EnemiesKilled: 1}}, 0)

	kills := 0
	for len(s.In) > 0 {
		if ev := <-s.In; ev.Kind == KindKill {
			kills += ev.I
		}
	}
	if kills != 1 {
		t.Fatalf("kills after restart: got %d want 1", kills)
	}
}

func approxEqual(a, b float32) bool {
	const eps = 1e-4
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
