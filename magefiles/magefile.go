// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the hoard project using Mage.
//
// Usage:
//
//	mage build       Compile the hoard binary to bin/
//	mage install     Install hoard to GOPATH/bin
//	mage clean       Remove build artifacts
//	mage test:all    Run all tests
//	mage test:unit   Run tests for library packages only (pkg/...)
//	mage test:cover  Run all tests with a coverage profile
//	mage lint        Run golangci-lint
//	mage stats       Print Go LOC and documentation word counts
package main

const (
	binGo      = "go"
	binaryName = "hoard"
	binaryDir  = "bin"
	cmdDir     = "./cmd/hoard"
	coverFile  = "coverage.out"
)
