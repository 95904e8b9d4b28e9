package game

import (
	"time"
)

// maxRunHistory bounds the score history drawn in the side panel.
const maxRunHistory = 200

// SessionStats accumulates in-memory counters for the current process.
// Nothing here survives a restart.
type SessionStats struct {
	StartTime    time.Time
	Ticks        int
	ApplesEaten  int
	Resets       int
	SessionHigh  int   // Best score of any run this session
	LongestBody  int   // Longest body length reached
	RunScores    []int // Final score of each finished run, oldest first
	AverageScore float64
}

func NewSessionStats() *SessionStats {
	return &SessionStats{StartTime: time.Now()}
}

// RecordTick updates per-tick counters.
func (s *SessionStats) RecordTick(ate bool, bodyLen int) {
	s.Ticks++
	if ate {
		s.ApplesEaten++
	}
	if bodyLen > s.LongestBody {
		s.LongestBody = bodyLen
	}
	if bodyLen-1 > s.SessionHigh {
		s.SessionHigh = bodyLen - 1
	}
}

// RecordReset closes the current run with its final score.
func (s *SessionStats) RecordReset(score int) {
	s.Resets++
	if len(s.RunScores) >= maxRunHistory {
		s.RunScores = s.RunScores[1:]
	}
	s.RunScores = append(s.RunScores, score)

	sum := 0
	for _, sc := range s.RunScores {
		sum += sc
	}
	s.AverageScore = float64(sum) / float64(len(s.RunScores))
}
