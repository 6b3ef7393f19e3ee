package game

import "log/slog"

// RunLog records statistics gathered during one session.
type RunLog struct {
	TurnsPlayed   int
	EnemiesKilled map[string]int // monster name → kill count
	DamageDealt   int
	DamageTaken   int
}

func newRunLog() RunLog {
	return RunLog{EnemiesKilled: make(map[string]int)}
}

func (r RunLog) kills() int {
	n := 0
	for _, c := range r.EnemiesKilled {
		n += c
	}
	return n
}

// LogValue renders the run as a structured slog group.
func (r RunLog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("turns", r.TurnsPlayed),
		slog.Int("kills", r.kills()),
		slog.Int("damage_dealt", r.DamageDealt),
		slog.Int("damage_taken", r.DamageTaken),
	)
}
