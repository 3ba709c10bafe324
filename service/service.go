// Package service holds the use cases of ppm. Each service is a struct of its
// collaborators and parameters, built once per command and run once.
package service

import (
	"github.com/ayoisaiah/ppm/internal/output"
)

// Service is a single use case.
type Service interface {
	Run() error
}

func writeLines(out output.Writer, lines ...string) error {
	for _, line := range lines {
		if err := out.WriteLine(line); err != nil {
			return err
		}
	}

	return nil
}
