package rules

const (
	// minSurvivors is the fewest live neighbors a live cell needs to survive
	minSurvivors = 2
	// maxSurvivors is the most live neighbors a live cell can have and survive
	maxSurvivors = 3
	// revivalCount is the exact live neighbor count that brings a dead cell to life
	revivalCount = 3
)

// Alone reports whether a cell with n live neighbors dies of underpopulation
func Alone(n int) bool {
	return n < minSurvivors
}

// Overpopulated reports whether a cell with n live neighbors dies of overcrowding
func Overpopulated(n int) bool {
	return n > maxSurvivors
}

// CanBeRevived reports whether a dead cell with n live neighbors is born
func CanBeRevived(n int) bool {
	return n == revivalCount
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives when it is neither alone nor overpopulated, a dead cell
is born when it can be revived.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return !Alone(neighbors) && !Overpopulated(neighbors)
	}
	return CanBeRevived(neighbors)
}
