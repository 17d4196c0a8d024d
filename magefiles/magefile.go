//go:build mage

// Package main provides build targets for the items service using Mage.
//
// Usage:
//
//	mage build    Compile the api binary to bin/
//	mage test     Run all tests with the race detector
//	mage swagger  Regenerate docs/ from handler annotations
//	mage lint     Run golangci-lint
//	mage run      Build and start the api on the memory store
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "api"
	binaryDir  = "bin"
	cmdDir     = "./cmd/api"
)

// Build compiles the api binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Swagger regenerates the OpenAPI docs package.
func Swagger() error {
	return sh.RunV("swag", "init", "-g", "cmd/api/main.go", "-o", "docs", "--outputTypes", "go")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Run builds and starts the api.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName))
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binaryDir)
}
