package timezone

import (
	"math"
	"nomad/config"
	"nomad/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const hoursPerDay = 24

var appLocation = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("APP_TIMEZONE is empty, dates are kept in UTC")
		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, dates are kept in UTC")
		return
	}

	appLocation = loc
	log.Info().Str("timezone", loc.String()).Msg("Application timezone loaded")
}

func GetLocation() *time.Location {
	return appLocation
}

func Now() time.Time {
	return time.Now().In(appLocation)
}

// Today is midnight of the current calendar day.
func Today() time.Time {
	return StartOfDay(Now())
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(appLocation).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate reads a trip or booking date (YYYY-MM-DD).
func ParseDate(value string) (time.Time, error) {
	return Parse(constant.DateOnlyFormat, value)
}

// FormatDate writes a DATE column back as YYYY-MM-DD. Postgres DATE values are
// scanned as UTC midnight, so the calendar day is taken before any zone shift.
func FormatDate(t time.Time) string {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, appLocation).Format(constant.DateOnlyFormat)
}

// Nights counts the calendar days between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Round(StartOfDay(checkOut).Sub(StartOfDay(checkIn)).Hours() / hoursPerDay))
}
