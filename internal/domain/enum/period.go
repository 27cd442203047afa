package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Period is a named report date filter
type Period int

const (
	PeriodToday   Period = 0
	PeriodWeekly  Period = 1
	PeriodMonthly Period = 2
	PeriodYearly  Period = 3
	PeriodCustom  Period = 4
	PeriodAll     Period = 5
)

func (p Period) String() string {
	names := [...]string{"Today", "Weekly", "Monthly", "Yearly", "Custom", "All"}
	if int(p) < 0 || int(p) >= len(names) {
		return "Today"
	}
	return names[p]
}

// Slug returns the lowercase form used in query parameters and filenames.
func (p Period) Slug() string {
	return strings.ToLower(p.String())
}

// ParsePeriod parses a query-parameter value. Empty input means Today.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return PeriodToday, nil
	case "weekly":
		return PeriodWeekly, nil
	case "monthly":
		return PeriodMonthly, nil
	case "yearly":
		return PeriodYearly, nil
	case "custom":
		return PeriodCustom, nil
	case "all":
		return PeriodAll, nil
	}
	return PeriodToday, fmt.Errorf("unknown period %q (use today, weekly, monthly, yearly, custom, or all)", s)
}

func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Period) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = Period(i)
		return nil
	}
	parsed, err := ParsePeriod(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
