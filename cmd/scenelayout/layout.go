// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"time"

	"cogentcore.org/canvas/layout"
	"cogentcore.org/canvas/scene"
	"cogentcore.org/canvas/sceneio"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

func (a *app) layoutCommand() *cobra.Command {
	var noSteps bool
	cmd := &cobra.Command{
		Use:   "layout <file>",
		Short: "Lay out a scene and print its snapshot",
		Long:  `Layout builds the scene in the given file, runs its steps, and prints a snapshot of the layout of every object.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(args[0], !noSteps)
		},
	}
	cmd.Flags().BoolVar(&noSteps, "no-steps", false, "print the layout before running the steps")
	return cmd
}

// run lays out the scene in the given file and prints the result.
func (a *app) run(filename string, steps bool) error {
	start := time.Now()
	var reg *prometheus.Registry
	if a.config.Metrics {
		reg = prometheus.NewRegistry()
		layout.EnableMetrics(reg)
		defer layout.DisableMetrics()
	}
	sc, err := sceneio.Open(filename)
	if err != nil {
		return err
	}
	c, err := sc.Build()
	if err != nil {
		return err
	}
	nsteps := 0
	if steps {
		if err := sc.Run(c); err != nil {
			return err
		}
		nsteps = len(sc.Steps)
	}
	sn := sceneio.TakeSnapshot(c)
	if a.tree {
		err = writeTree(a.out, sn, a.config.Color)
	} else {
		f, ferr := a.config.OutputFormat()
		if ferr != nil {
			return ferr
		}
		err = sn.Write(a.out, f)
	}
	if err != nil {
		return err
	}
	if reg != nil {
		if err := writeMetrics(a.out, reg); err != nil {
			return err
		}
	}
	nobj := 0
	c.Walk(func(obj scene.Object, depth int) bool {
		nobj++
		return true
	})
	a.logger.Info("laid out scene", "file", filename, "objects", nobj, "steps", nsteps, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// writeMetrics writes the gathered metrics in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
