package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/ppm/app"
	"github.com/ayoisaiah/ppm/internal/osutil"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(osutil.ExitError.Code())
	}
}
