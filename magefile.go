//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

func Build() error {
	mg.Deps(BuildSimulate)
	mg.Deps(BuildStream)
	fmt.Println("Compilation finished")
	return nil
}

func BuildSimulate() error {
	fmt.Println("Building simulate executable...")
	cmd := exec.Command("go", "build", "-o", "./bin/simulate", "./simulate")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func BuildStream() error {
	fmt.Println("Building stream executable...")
	cmd := exec.Command("go", "build", "-o", "./bin/stream", "./stream")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
