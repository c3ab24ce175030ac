// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialization, once at startup:
//     timezone.Init(cfg.App.Timezone)
//
//  2. Current time and date in app timezone:
//     now := timezone.Now()
//     today := timezone.Today()
//
//  3. Parsing console dates in app timezone:
//     t, err := timezone.Parse("01/02/2006", "06/01/2024")
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable.
// Until Init runs every helper works in UTC.
package timezone
