package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/glyphkit/glyphkit/internal/doctor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the local environment can run games",
	Long: `Run environment diagnostics: terminal capabilities, data directory,
scores database, and embedded assets.

Exits non-zero if a required check fails.

Examples:
  glyphkit doctor
  glyphkit doctor --db ./scores.db`,
	Run: runDoctor,
}

func runDoctor(_ *cobra.Command, _ []string) {
	results := doctor.Run(doctor.Options{DBPath: flagDBPath})
	doctor.Report(os.Stdout, results)

	if !doctor.Healthy(results) {
		os.Exit(1)
	}
}
