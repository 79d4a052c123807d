package date

import "time"

// US equity sessions run on Eastern time, so every user-facing timestamp is
// rendered in that zone regardless of where the program runs.

// StampLayout is the long timestamp format used on research briefs,
// e.g. "February 17, 2026 09:00 AM ET".
const StampLayout = "January 02, 2006 03:04 PM ET"

// ClockLayout is the short market-clock format shown on the dashboard,
// e.g. "09:00 AM ET - Feb 17, 2026".
const ClockLayout = "03:04 PM ET - Jan 02, 2006"

var eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		// without a tz database, fall back to standard Eastern time
		return time.FixedZone("ET", -5*60*60)
	}
	return loc
}()

// MarketNow returns the current time on the US-Eastern market clock.
func MarketNow() time.Time { return time.Now().In(eastern) }

// MarketDay returns the date on the US-Eastern market clock, which can lag
// the local calendar by a day for users east of the Atlantic.
func MarketDay() Date { return New(MarketNow().Date()) }

// Stamp renders t in the long Eastern-time format used on briefs.
func Stamp(t time.Time) string { return t.In(eastern).Format(StampLayout) }

// Clock renders t in the short Eastern-time format used on the dashboard.
func Clock(t time.Time) string { return t.In(eastern).Format(ClockLayout) }
