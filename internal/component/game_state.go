package component

// Phase — фаза игровой сессии
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseWin
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "PLAYING"
	case PhaseWin:
		return "WIN"
	case PhaseGameOver:
		return "GAMEOVER"
	default:
		return "START"
	}
}

// Terminal reports whether the phase ends the session until the next reset.
func (p Phase) Terminal() bool {
	return p == PhaseWin || p == PhaseGameOver
}

// KillCause — чем был уничтожен вражеский снаряд.
type KillCause int

const (
	KillExplosion KillCause = iota
	KillLightning
	KillRare
	killCauseCount
)

func (c KillCause) String() string {
	switch c {
	case KillLightning:
		return "lightning"
	case KillRare:
		return "rare"
	default:
		return "explosion"
	}
}

// Stats — счётчики сессии для HUD и логов.
type Stats struct {
	ShotsFired  int
	Kills       [killCauseCount]int
	Impacts     int
	CitiesLost  int
	BatteryLost int
}

// TotalKills sums kills over all causes.
func (s Stats) TotalKills() int {
	total := 0
	for _, k := range s.Kills {
		total += k
	}
	return total
}

// Session — состояние сессии, которым владеет контроллер и которое
// явно передаётся системам на каждом тике.
type Session struct {
	ID     string
	Phase  Phase
	Score  int
	Paused bool
	Tick   uint64
	Stats  Stats
}

// Running reports whether the simulation should advance this tick.
func (s *Session) Running() bool {
	return s.Phase == PhasePlaying && !s.Paused
}
