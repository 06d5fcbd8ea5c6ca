// Package timezone pins every calendar computation to the salon's timezone,
// configured through APP_TIMEZONE with an IANA name and loaded on import.
//
//	now := timezone.Now()
//	day, err := timezone.ParseDay("2025-03-04") // midnight in the salon's zone
//	today := timezone.SameDay(day, now)
package timezone
