package component

// Strategy tags the behaviour an AI runs each turn.
type Strategy uint8

const (
	StrategyBasicChaser Strategy = iota // chase the player when seen, attack when adjacent
)

func (s Strategy) String() string {
	switch s {
	case StrategyBasicChaser:
		return "basic-chaser"
	}
	return "unknown"
}

// AI marks a non-player entity that acts on its own each turn.
type AI struct {
	Strategy Strategy
}
