package config

// DefaultConfigDir is where habitlens keeps its config and database.
const DefaultConfigDir = "~/.config/habitlens"

// DefaultDBName is the SQLite database filename.
const DefaultDBName = "habitlens.db"

// DefaultPeriod is the trend horizon used when --period is not given.
const DefaultPeriod = "4W"

// DefaultMinHourSamples is the soft threshold of timed completions
// below which the hours view warns that the distribution is thin. The
// engine itself applies no gate here; this is presentation guidance.
const DefaultMinHourSamples = 10

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
