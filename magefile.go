//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	binDir  = "bin"
	appName = "fitformal-web"
)

var Default = Dev

// Dev: tidy then hot-reload with air when available, plain go run otherwise
func Dev() error {
	mg.Deps(Tidy)

	if _, err := exec.LookPath("air"); err == nil {
		fmt.Println("Starting hot-reload with air ...")
		return sh.RunV("air")
	}

	fmt.Println("air not found. Falling back to `go run ./cmd/web`.")
	fmt.Println("Install with: mage Tools")
	return Run()
}

func Run() error {
	fmt.Println("Running (go run) on :8080 ...")
	return sh.RunV("go", "run", "./cmd/web")
}

// Mock: run the fake upstream API on :9090
func Mock() error {
	return sh.RunV("go", "run", "./cmd/tools/mockupstream")
}

func Build() error {
	mg.Deps(Tidy)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binDir, appName)
	if runtime.GOOS == "windows" {
		out += ".exe"
	}
	fmt.Println("Building", out, "...")
	return sh.RunV("go", "build", "-o", out, "./cmd/web")
}

func Test() error {
	return sh.RunV("go", "test", "./...")
}

func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		return fmt.Errorf("golangci-lint not found. Install with: mage Tools")
	}
	return sh.RunV("golangci-lint", "run")
}

func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Tools: install dev tooling
func Tools() error {
	tools := []string{
		"github.com/air-verse/air@latest",
		"github.com/golangci/golangci-lint/v2/cmd/golangci-lint@latest",
	}
	for _, t := range tools {
		fmt.Println("Installing", t, "...")
		if err := sh.RunV("go", "install", t); err != nil {
			return err
		}
	}
	return nil
}

func Clean() error {
	return os.RemoveAll(binDir)
}
