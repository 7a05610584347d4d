package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePlayer1       float64
	AveragePlayer2       float64
	PeakPlayer1          int
	PeakPlayer2          int
	TotalGenerations     int
	StartTime            time.Time

	samples int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. duration is the time spent computing it.
func (s *Stats) Update(generation, player1, player2 int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.PeakPlayer1 = max(s.PeakPlayer1, player1)
	s.PeakPlayer2 = max(s.PeakPlayer2, player2)

	// Simple moving average per player
	if s.samples == 0 {
		s.AveragePlayer1 = float64(player1)
		s.AveragePlayer2 = float64(player2)
	} else {
		s.AveragePlayer1 = (s.AveragePlayer1 * 0.9) + (float64(player1) * 0.1)
		s.AveragePlayer2 = (s.AveragePlayer2 * 0.9) + (float64(player2) * 0.1)
	}
	s.samples++
}

// Reset clears the history, e.g. after the grid is cleared or randomized
func (s *Stats) Reset() {
	*s = Stats{StartTime: time.Now()}
}

// Elapsed returns the time since the stats were created or reset
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
