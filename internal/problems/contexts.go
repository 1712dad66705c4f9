package problems

// Cultural context tables. The rural/urban split and the festival calendar
// follow the curriculum requirement of 60% rural framing with seasonal
// festival problems.

// ruralUrbanRatio is the probability of choosing a rural context.
const ruralUrbanRatio = 0.6

// festivalChance is the probability of using a festival template when the
// current month has a festival.
const festivalChance = 0.3

// festival is a named festival and the month it falls in.
type festival struct {
	Name  string
	Month int
}

var festivals = []festival{
	{Name: "Thai Pongal", Month: 1},
	{Name: "Sinhala and Tamil New Year", Month: 4},
	{Name: "Vesak", Month: 5},
	{Name: "Poson Poya", Month: 6},
}

// festivalForMonth returns the festival name for a month, or "" if none.
func festivalForMonth(month int) string {
	for _, f := range festivals {
		if f.Month == month {
			return f.Name
		}
	}
	return ""
}
