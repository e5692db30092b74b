package cli

import (
	"bytes"

	"github.com/custodia-labs/unitconv/internal/adapters/driven/registry"
	"github.com/custodia-labs/unitconv/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unitconv/internal/core/services"
)

// setupTestServices installs in-memory services backed by the built-in
// registry and returns a cleanup func that restores the previous state.
func setupTestServices() func() {
	reg := registry.NewBuiltin()
	SetServices(&Services{
		Conversion: services.NewConversionService(reg),
		Units:      services.NewUnitService(reg, memory.NewCustomUnitStore()),
		Settings:   services.NewSettingsService(memory.NewConfigStore()),
	})

	return func() {
		SetServices(nil)
		resetFlags()
	}
}

// resetFlags clears flag variables, which cobra keeps between executions.
func resetFlags() {
	factorJSON = false
	convertJSON = false
	compatibleJSON = false
	explainJSON = false
	unitsListCustom = false
	unitsListJSON = false
	unitsShowJSON = false
	unitsDefineName = ""
	verboseFlag = false
	configDirFlag = ""
	bootstrap = nil
}

// execute runs the root command with args and returns combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
