// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sparseir/godlr/dlr"
	"github.com/sparseir/godlr/dlrio"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "godlr"
	myApp.Usage = "build and inspect Discrete Lehmann Representation bases"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.Float64Flag{
			Name:  "lambda, L",
			Value: 100,
			Usage: "dimensionless cutoff Λ = β·ω_max",
		},
		cli.Float64Flag{
			Name:  "eps, e",
			Value: 1e-10,
			Usage: "target relative accuracy ε",
		},
		cli.StringFlag{
			Name:  "stat, s",
			Value: "fermion",
			Usage: "statistic: fermion or boson",
		},
		cli.BoolFlag{
			Name:  "symmetrize",
			Usage: "build the symmetrized basis (spec.md §4.4)",
		},
		cli.IntFlag{
			Name:  "order, p",
			Value: 0,
			Usage: "fine-grid panel order, 0 selects the default",
		},
		cli.StringFlag{
			Name:  "save",
			Usage: "write the imaginary-time and imaginary-frequency operators to this JSON file",
		},
	}
	myApp.Action = run

	if err := myApp.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func run(c *cli.Context) error {
	lambda := c.Float64("lambda")
	eps := c.Float64("eps")
	symmetrize := c.Bool("symmetrize")
	order := c.Int("order")

	var stat dlr.Statistic
	switch c.String("stat") {
	case "fermion":
		stat = dlr.Fermion
	case "boson":
		stat = dlr.Boson
	default:
		return errors.Errorf("unknown statistic %q, want fermion or boson", c.String("stat"))
	}

	basis, err := dlr.NewBasis(lambda, eps, symmetrize, order)
	if err != nil {
		return errors.Wrap(err, "NewBasis")
	}

	imtime := dlr.NewImTimeOps(basis)
	imfreq := dlr.NewImFreqOps(basis, stat)

	fmt.Printf("lambda=%g eps=%g stat=%v symmetrize=%v\n", lambda, eps, stat, symmetrize)
	fmt.Printf("rank r=%d\n", basis.Rank())
	fmt.Printf("imaginary-time nodes: %d\n", imtime.Rank())
	fmt.Printf("imaginary-frequency nodes: %d\n", imfreq.NumNodes())

	if path := c.String("save"); path != "" {
		itGroup := dlrio.NewJSONGroup()
		dlr.SaveImTimeOps(imtime, itGroup)
		if err := itGroup.Save(path + ".imtime.json"); err != nil {
			return errors.Wrap(err, "saving imaginary-time operator")
		}

		ifGroup := dlrio.NewJSONGroup()
		dlr.SaveImFreqOps(imfreq, ifGroup)
		if err := ifGroup.Save(path + ".imfreq.json"); err != nil {
			return errors.Wrap(err, "saving imaginary-frequency operator")
		}
		fmt.Printf("wrote %s.imtime.json and %s.imfreq.json\n", path, path)
	}
	return nil
}
