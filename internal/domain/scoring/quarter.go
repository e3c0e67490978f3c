package scoring

import (
	"fmt"
	"math"
	"time"
)

type QuarterInfo struct {
	Number   int
	Label    string
	DaysLeft int
}

// CurrentQuarter derives the calendar quarter containing now and the days
// remaining until the last day of that quarter. DaysLeft never goes below 0.
func CurrentQuarter(now time.Time) QuarterInfo {
	number := (int(now.Month())-1)/3 + 1
	endMonth := time.Month(number * 3)
	// Day 0 of the following month is the last day of endMonth.
	end := time.Date(now.Year(), endMonth+1, 0, 0, 0, 0, 0, now.Location())
	days := int(math.Ceil(end.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return QuarterInfo{
		Number:   number,
		Label:    fmt.Sprintf("Q%d", number),
		DaysLeft: days,
	}
}

// Of returns the input's metrics for this quarter.
func (q QuarterInfo) Of(in Input) Quarter {
	if q.Number < 1 || q.Number > len(in.Quarters) {
		return Quarter{}
	}
	return in.Quarters[q.Number-1]
}
