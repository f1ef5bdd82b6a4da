// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Calendar-date helpers for booking preconditions:
//     today := timezone.Today()                // Midnight of the current day
//     day := timezone.Midnight(someTime)       // Truncate any time to its day
//
//  3. Formatting and parsing times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02")
//     t, err := timezone.Parse("2006-01-02", "2026-03-01")
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
