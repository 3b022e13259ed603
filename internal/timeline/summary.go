package timeline

import (
	"sort"

	"github.com/pkordes/staylog/internal/domain"
)

// DefaultThreshold is the residency warning level in days.
const DefaultThreshold = 183

// CountryDays is one row of the per-country ranking.
type CountryDays struct {
	Country string
	Days    int
}

// Summary is the per-year aggregate of a set of entries.
type Summary struct {
	Year       int
	Threshold  int
	DaysInYear int
	// TotalDays is the number of stay days inside the year. It always equals
	// the sum of PerCountry.
	TotalDays   int
	StayCount   int
	FlightCount int
	PerCountry  map[string]int
	// Countries ranks PerCountry by days descending, then name.
	Countries []CountryDays
	// OverThreshold lists the countries at or above Threshold, sorted by name.
	OverThreshold []string
	// YearShare is TotalDays as a percentage of DaysInYear.
	YearShare float64
}

// Summarize counts stay days per country for year. A stay crossing a year
// boundary contributes only its days inside year. Flights are counted but
// never contribute days. A threshold of zero or less means DefaultThreshold.
func Summarize(entries []domain.Entry, year, threshold int) Summary {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	bounds := domain.YearRange(year)
	sum := Summary{
		Year:          year,
		Threshold:     threshold,
		DaysInYear:    bounds.Days(),
		PerCountry:    map[string]int{},
		Countries:     []CountryDays{},
		OverThreshold: []string{},
	}

	for _, e := range entries {
		switch v := e.(type) {
		case domain.Stay:
			in, ok := v.Range().Intersect(bounds)
			if !ok {
				continue
			}
			sum.StayCount++
			sum.PerCountry[v.Country] += in.Days()
			sum.TotalDays += in.Days()
		case domain.Flight:
			if v.Date.Year() == year {
				sum.FlightCount++
			}
		}
	}

	for country, days := range sum.PerCountry {
		sum.Countries = append(sum.Countries, CountryDays{Country: country, Days: days})
		if days >= threshold {
			sum.OverThreshold = append(sum.OverThreshold, country)
		}
	}
	sort.Slice(sum.Countries, func(i, j int) bool {
		a, b := sum.Countries[i], sum.Countries[j]
		if a.Days != b.Days {
			return a.Days > b.Days
		}
		return a.Country < b.Country
	})
	sort.Strings(sum.OverThreshold)
	sum.YearShare = float64(sum.TotalDays) / float64(sum.DaysInYear) * 100
	return sum
}

// Top returns at most n countries from the ranking.
func (s Summary) Top(n int) []CountryDays {
	if n < 0 || n > len(s.Countries) {
		n = len(s.Countries)
	}
	return s.Countries[:n]
}
