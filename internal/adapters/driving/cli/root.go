// Package cli implements the unitconv command line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Services holds the application services used by the commands.
type Services struct {
	Conversion driving.ConversionService
	Units      driving.UnitService
	Settings   driving.SettingsService

	// Close releases resources held by the services. May be nil.
	Close func() error
}

// Bootstrap builds the services for the given config directory.
// An empty configDir selects the default location.
type Bootstrap func(configDir string) (*Services, error)

var (
	conversionService driving.ConversionService
	unitService       driving.UnitService
	settingsService   driving.SettingsService
	closeServices     func() error

	bootstrap Bootstrap
)

var (
	verboseFlag   bool
	configDirFlag string
)

// annotationNoServices marks commands that run without bootstrapping.
const annotationNoServices = "unitconv/no-services"

var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Convert between units of measurement",
	Long: `unitconv parses compound unit expressions such as "kg*m/s^2" or
"lb/h", reduces them to SI base dimensions and computes conversion factors.

Expressions combine unit symbols with '*', '/', '^' and parentheses.
Every factor after the first '/' is in the denominator, so "J/mol*K" is
"J*mol^-1*K^-1". SI prefixes (f p n mu m c d da h k M G T P) apply to
SI units: "km", "mus", "kW".`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print parse and reduction steps to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.unitconv)")
}

// SetServices installs the services directly, bypassing bootstrap.
func SetServices(s *Services) {
	if s == nil {
		conversionService, unitService, settingsService, closeServices = nil, nil, nil, nil
		return
	}
	conversionService = s.Conversion
	unitService = s.Units
	settingsService = s.Settings
	closeServices = s.Close
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Services are built by boot after flags
// are parsed, unless they were already installed with SetServices.
func Execute(boot Bootstrap) error {
	bootstrap = boot
	defer func() {
		if closeServices == nil {
			return
		}
		if err := closeServices(); err != nil {
			logger.Warn("closing services: %v", err)
		}
	}()
	return rootCmd.Execute()
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}
	if conversionService != nil || bootstrap == nil {
		return nil
	}

	logger.Section("Bootstrap")
	logger.Debug("Config dir: %q", configDirFlag)

	s, err := bootstrap(configDirFlag)
	if err != nil {
		return err
	}
	if s == nil {
		return errors.New("bootstrap returned no services")
	}
	SetServices(s)
	return nil
}
