package world

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"horde-arena/internal/shared/input"
)

const ReplayVersion = 1

var ErrReplayMismatch = errors.New("replay does not match config")

type ReplayHeader struct {
	Version    int    `json:"version"`
	Seed       int64  `json:"seed"`
	ConfigHash string `json:"config_hash"`
}

// ReplayFrame is everything one frame fed into the world.
type ReplayFrame struct {
	DT     float32     `json:"dt"`
	Input  input.State `json:"input"`
	Choose int         `json:"choose"` // -1 for none
	Start  bool        `json:"start"`
}

// Replay is an in-memory input log. Because the world is deterministic for
// a given config and seed, running the frames again reproduces the match.
type Replay struct {
	Header ReplayHeader  `json:"header"`
	Frames []ReplayFrame `json:"frames"`
}

func ConfigHash(cfg Config) (string, error) {
	blob, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal replay config: %w", err)
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:]), nil
}

func NewReplay(cfg Config) (*Replay, error) {
	hash, err := ConfigHash(cfg)
	if err != nil {
		return nil, err
	}
	return &Replay{
		Header: ReplayHeader{
			Version:    ReplayVersion,
			Seed:       cfg.Seed,
			ConfigHash: hash,
		},
	}, nil
}

func (r *Replay) Record(f ReplayFrame) {
	r.Frames = append(r.Frames, f)
}

// Apply enqueues a frame's messages and ticks the world once.
func (f ReplayFrame) Apply(w *World) {
	if f.Start {
		w.Enqueue(MsgStart{})
	}
	if f.Choose >= 0 {
		w.Enqueue(MsgChooseUpgrade{Choice: f.Choose})
	}
	w.Enqueue(MsgInput{Input: f.Input})
	w.Tick(f.DT)
}

// Run builds a fresh world from cfg and plays every frame into it.
// Match ids are random and therefore not reproduced.
func (r *Replay) Run(cfg Config) (*World, error) {
	if r.Header.Version != ReplayVersion {
		return nil, fmt.Errorf("unsupported replay version: got %d want %d", r.Header.Version, ReplayVersion)
	}
	hash, err := ConfigHash(cfg)
	if err != nil {
		return nil, err
	}
	if hash != r.Header.ConfigHash {
		return nil, fmt.Errorf("%w: hash %s, recorded %q", ErrReplayMismatch, hash, r.Header.ConfigHash)
	}

	w, err := NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	for _, f := range r.Frames {
		f.Apply(w)
	}
	return w, nil
}
