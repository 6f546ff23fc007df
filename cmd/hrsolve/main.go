// Command hrsolve solves hospital/resident assignment instances from JSON
// preference data and reports the matching, sanitizer warnings, and the
// stability and validity verdicts.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/stablemate/matching/hr"
)

func main() {
	app := &cli.App{
		Name:  "hrsolve",
		Usage: "Stable assignment of residents to capacity-constrained hospitals",
		Commands: []*cli.Command{
			solveCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var solveCmd = &cli.Command{
	Name:    "solve",
	Usage:   "Solve an instance with capacitated deferred acceptance",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input instance.json",
		},
		&cli.StringFlag{
			Name:     "output",
			Required: false,
			Usage:    "specify the output matching.json (default stdout)",
		},
		&cli.StringFlag{
			Name:     "optimal",
			Required: false,
			Value:    "resident",
			Usage:    "whose optimal stable outcome to compute: resident or hospital",
		},
		&cli.BoolFlag{
			Name:     "clean",
			Required: false,
			Usage:    "repair defective preference data instead of only warning",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			inputFile  = ctx.String("input")
			outputFile = ctx.String("output")
			optimal    = ctx.String("optimal")
			clean      = ctx.Bool("clean")
		)

		var orientation hr.Orientation
		switch optimal {
		case "resident":
			orientation = hr.ResidentOptimal
		case "hospital":
			orientation = hr.HospitalOptimal
		default:
			return errors.New("invalid optimal: want resident or hospital")
		}

		return doSolve(inputFile, outputFile, orientation, clean)
	},
}
