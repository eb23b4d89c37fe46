//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var ldflags = "-X main.version=" + version()

func version() string {
	if v := os.Getenv("RRGO_VERSION"); v != "" {
		return v
	}
	return "dev"
}

// Build compiles the CLI and the TUI into ./bin.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building rrgo and rrgo-tui...")
	if err := sh.Run("go", "build", "-ldflags", ldflags, "-o", "bin/rrgo", "./cmd/rrgo"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", "bin/rrgo-tui", "./cmd/rrgo-tui")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Example prints the worked example through the CLI.
func Example() error {
	mg.Deps(Build)
	return sh.RunV("./bin/rrgo", "calculate", "--years", "4", "--leave-hours", "76", "--salary", "104000", "--after-tax")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println(">> Cleaning...")
	return sh.Rm("bin")
}

// Install installs both binaries to $GOPATH/bin.
func Install() error {
	mg.Deps(Test)
	if err := sh.Run("go", "install", "-ldflags", ldflags, "./cmd/rrgo"); err != nil {
		return err
	}
	return sh.Run("go", "install", "./cmd/rrgo-tui")
}
