// Package mcp provides an MCP (Model Context Protocol) server adapter for unitconv.
// It lets AI assistants convert quantities, check compatibility and browse
// the unit registry.
package mcp

import "errors"

// ErrMissingConversionService is returned when the conversion service is not provided.
var ErrMissingConversionService = errors.New("mcp: conversion service is required")
