package leaderboard

import "fmt"

// Lines formats entries as numbered table rows.
func Lines(top []Entry) []string {
	if len(top) == 0 {
		return []string{"no scores yet"}
	}
	lines := make([]string, 0, len(top))
	for i, e := range top {
		lines = append(lines, fmt.Sprintf("%2d. %6d  floor %d wave %d", i+1, e.Score, e.Floor, e.Wave))
	}
	return lines
}
