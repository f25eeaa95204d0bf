// Package timezone pins every timestamp the service produces to APP_TIMEZONE.
//
// Trip and booking dates are calendar dates, not instants: ParseDate reads a
// YYYY-MM-DD value as midnight in the application zone and FormatDate writes
// it back the same way, so a departure on 2026-03-01 stays on that day no
// matter where the database or the client sits.
//
//	dep, err := timezone.ParseDate("2026-03-01")
//	if dep.Before(timezone.Today()) { ... }
//	nights := timezone.Nights(checkIn, checkOut)
//
// The location is loaded once at import time; an unknown name falls back to UTC.
package timezone
