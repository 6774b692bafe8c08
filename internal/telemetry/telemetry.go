package telemetry

import (
	"sync"
	"time"

	"horde-arena/internal/commons/logger_config"
)

type Kind uint8

const (
	KindMatch Kind = iota // a new match began; Match carries its id
	KindKill
	KindBossKill
	KindLevelUp
	KindFrame
)

type Event struct {
	Kind  Kind
	I     int
	F     float32
	Match string
	At    time.Time
}

// Batch aggregates events between two flushes.
type Batch struct {
	Match     string
	Kills     int
	BossKills int
	LevelUps  int
	Frames    int
	AvgDt     float32
	Dropped   int
}

func (b Batch) empty() bool {
	return b.Kills == 0 && b.BossKills == 0 && b.LevelUps == 0 && b.Frames == 0 && b.Dropped == 0
}

type Sink struct {
	In chan Event

	flushEvery time.Duration
	flush      func(Batch)

	mu      sync.Mutex
	dropped int

	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewSink starts a sink that logs one structured line every two seconds.
func NewSink() *Sink {
	return newSink(2*time.Second, logBatch)
}

func newSink(every time.Duration, flush func(Batch)) *Sink {
	if flush == nil {
		flush = func(Batch) {}
	}
	s := &Sink{
		In:         make(chan Event, 256),
		flushEvery: every,
		flush:      flush,
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go s.loop()

	return s
}

// Emit never blocks the frame loop; events are dropped and counted when the
// buffer is full.
func (s *Sink) Emit(ev Event) {
	select {
	case s.In <- ev:
	default:
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
	}
}

// Close stops the loop after flushing what is already buffered. Safe to call
// more than once.
func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.done
}

func (s *Sink) takeDropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.dropped
	s.dropped = 0
	return n
}

func (s *Sink) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.flushEvery)
	defer ticker.Stop()

	var b Batch
	var dtSum float32

	add := func(ev Event) {
		switch ev.Kind {
		case KindMatch:
			b.Match = ev.Match
		case KindKill:
			b.Kills += ev.I
		case KindBossKill:
			b.BossKills += ev.I
		case KindLevelUp:
			b.LevelUps += ev.I
		case KindFrame:
			b.Frames++
			dtSum += ev.F
		}
	}

	emit := func(final bool) {
		b.Dropped = s.takeDropped()
		if b.Frames > 0 {
			b.AvgDt = dtSum / float32(b.Frames)
		}
		if !final || !b.empty() {
			s.flush(b)
		}
		// reset batch, keep the match tag
		b = Batch{Match: b.Match}
		dtSum = 0
	}

	for {
		select {
		case <-s.quit:
			for {
				select {
				case ev := <-s.In:
					add(ev)
				default:
					emit(true)
					return
				}
			}

		case ev := <-s.In:
			add(ev)

		case <-ticker.C:
			emit(false)
		}
	}
}

func logBatch(b Batch) {
	if b.empty() {
		return
	}
	logger_config.Logger.Info("telemetry",
		"match", b.Match,
		"kills", b.Kills,
		"boss_kills", b.BossKills,
		"level_ups", b.LevelUps,
		"frames", b.Frames,
		"avg_dt", b.AvgDt,
		"dropped", b.Dropped,
	)
}
