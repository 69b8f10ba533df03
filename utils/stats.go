package utils

import "time"

// Stats for status lines
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	lastUpdate time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a frame showing generation with the given population at now
func (s *Stats) Update(generation int, population int, now time.Time) {
	switch {
	case s.lastUpdate.IsZero() || generation < s.TotalGenerations:
		// First frame, or the grid was reseeded
		s.GenerationsPerSecond = 0
		s.lastUpdate = now
	case generation > s.TotalGenerations:
		if elapsed := now.Sub(s.lastUpdate); elapsed > 0 {
			s.GenerationsPerSecond = float64(generation-s.TotalGenerations) / elapsed.Seconds()
		}
		s.lastUpdate = now
	}
	s.TotalGenerations = generation

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns how long the stats have been collected
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
