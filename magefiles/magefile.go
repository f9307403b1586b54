//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/mesh-intelligence/basis-pages/pkg/basispages"
)

const (
	binaryDir   = "bin"
	binaryName  = "basispages"
	mainPackage = "./cmd/basispages"
)

// Build compiles the basispages binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", filepath.Join(binaryDir, binaryName), mainPackage)
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// E2E runs the end-to-end tests against a freshly built binary.
func E2E() error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "-tags", "e2e", "./tests/e2e/...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binaryDir)
}

// Generate writes any missing basis pages using basis-pages.yaml in the
// repository root, or the defaults when the file is absent.
func Generate() error {
	return generate(false)
}

// Plan reports the pages Generate would write without touching the tree.
func Plan() error {
	return generate(true)
}

func generate(dryRun bool) error {
	cfg := basispages.DefaultConfig()
	if _, err := os.Stat(basispages.DefaultConfigFile); err == nil {
		loaded, err := basispages.LoadConfig(basispages.DefaultConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.DryRun = dryRun

	g, err := basispages.New(cfg)
	if err != nil {
		return err
	}
	rep, err := g.Run()
	if err != nil {
		return fmt.Errorf("generating pages: %w", err)
	}
	return rep.Print(os.Stdout)
}
