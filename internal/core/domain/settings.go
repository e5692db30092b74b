package domain

import "fmt"

const unknownDescription = "Unknown"

// Output precision bounds, in significant digits.
const (
	MinPrecision     = 1
	MaxPrecision     = 17
	DefaultPrecision = 10
)

// AppSettings holds user-configurable application settings.
type AppSettings struct {
	// Output controls how numbers are printed.
	Output OutputSettings

	// Cache controls conversion factor memoisation.
	Cache CacheSettings

	// Data controls where persistent data lives.
	Data DataSettings
}

// OutputSettings controls number formatting.
type OutputSettings struct {
	// Precision is the number of significant digits printed.
	Precision int
}

// CacheSettings controls the conversion factor cache.
type CacheSettings struct {
	// Enabled turns on memoisation of (source, target) factors.
	Enabled bool
}

// DataSettings controls persistent storage.
type DataSettings struct {
	// Dir is the directory holding the custom unit database.
	// Empty means ~/.unitconv/data.
	Dir string
}

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{Precision: DefaultPrecision},
		Cache:  CacheSettings{Enabled: true},
	}
}

// Validate checks settings values are in range.
func (s AppSettings) Validate() error {
	if s.Output.Precision < MinPrecision || s.Output.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision must be between %d and %d, got %d",
			ErrInvalidInput, MinPrecision, MaxPrecision, s.Output.Precision)
	}
	return nil
}
