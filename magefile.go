//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "ruphon"

// Default target when running plain mage
var Default = Build

// Build compiles the ruphon binary
func Build() error {
	fmt.Println("Building", binary)
	// go-sqlite3 needs cgo
	return sh.RunWith(map[string]string{"CGO_ENABLED": "1"}, "go", "build", "-o", binary, "./cmd/ruphon")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Install puts the binary into ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	binDir := filepath.Join(home, "go", "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return err
	}
	return sh.Copy(filepath.Join(binDir, binary), binary)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
