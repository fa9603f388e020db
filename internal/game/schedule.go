package game

// MaxCards is the largest hand the ladder deals for n players.
func MaxCards(n int) int {
	if n <= 0 {
		return 0
	}
	m := 52 / n
	if m > 13 {
		m = 13
	}
	return m
}

// RoundSchedule returns the hand size of every round: 1..max then max-1..1.
func RoundSchedule(n int) []int {
	max := MaxCards(n)
	if max == 0 {
		return nil
	}
	rounds := make([]int, 0, 2*max-1)
	for i := 1; i <= max; i++ {
		rounds = append(rounds, i)
	}
	for i := max - 1; i >= 1; i-- {
		rounds = append(rounds, i)
	}
	return rounds
}
