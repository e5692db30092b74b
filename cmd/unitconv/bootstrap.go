package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/unitconv/internal/adapters/driven/config/file"
	"github.com/custodia-labs/unitconv/internal/adapters/driven/registry"
	"github.com/custodia-labs/unitconv/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/unitconv/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/unitconv/internal/adapters/driving/cli"
	"github.com/custodia-labs/unitconv/internal/core/services"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// bootstrap wires the adapters and services for configDir.
func bootstrap(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	dataDir := settings.Data.Dir
	if dataDir == "" {
		dataDir = filepath.Join(configDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening unit database: %w", err)
	}
	logger.Debug("Unit database: %s", store.Path())

	custom, err := store.CustomUnitStore().List(context.Background())
	if err != nil {
		store.Close() //nolint:errcheck
		return nil, fmt.Errorf("loading custom units: %w", err)
	}

	// Skip rows that clash with the built-ins rather than failing, so that
	// "units remove" can still clean them up.
	reg, skipped := registry.Load(custom...)
	for _, err := range skipped {
		logger.Warn("Skipping %v", err)
		fmt.Fprintf(os.Stderr, "Warning: skipping %v\n", err)
	}
	logger.Debug("Registry: %d units (%d custom)", reg.Len(), len(custom)-len(skipped))

	conversion := services.NewConversionService(reg)
	if settings.Cache.Enabled {
		conversion.SetFactorCache(memory.NewFactorCache(memory.DefaultFactorCacheCapacity))
	}

	return &cli.Services{
		Conversion: conversion,
		Units:      services.NewUnitService(reg, store.CustomUnitStore()),
		Settings:   settingsService,
		Close:      store.Close,
	}, nil
}
