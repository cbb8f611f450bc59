package dataset

// DefaultSeason is used for states without a configured season range
const DefaultSeason = "All Year"

// seasonMapping maps a state to its recommended trekking season range.
// Configuration data, not learned from the dataset.
var seasonMapping = map[string]string{
	"Himachal Pradesh":  "April - June, September - November",
	"Uttarakhand":       "March - June, September - November",
	"Maharashtra":       "October - February",
	"Karnataka":         "October - February",
	"Kerala":            "September - March",
	"Jammu and Kashmir": "May - October",
	"West Bengal":       "October - March",
	"Tamil Nadu":        "November - February",
	"Goa":               "November - February",
}

// SeasonFor returns the best trekking season for a state
func SeasonFor(state string) string {
	if season, ok := seasonMapping[state]; ok {
		return season
	}
	return DefaultSeason
}
