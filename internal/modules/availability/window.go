package availability

import "time"

// WindowSizes are the day-count options the screen offers.
var WindowSizes = []int{7, 14, 30, 60}

const DefaultWindow = 7

func validWindow(n int) bool {
	for _, w := range WindowSizes {
		if n == w {
			return true
		}
	}
	return false
}

// Window generates the contiguous run of calendar dates [start, start+days)
// as YYYY-MM-DD strings, stepped by whole days in start's location.
func Window(start time.Time, days int) []string {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	out := make([]string, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, day.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return out
}
