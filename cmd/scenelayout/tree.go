// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/canvas/sceneio"
	"github.com/muesli/termenv"
)

// writeTree writes the snapshot as an indented tree of objects,
// colored when color is set and the writer supports it.
func writeTree(w io.Writer, sn *sceneio.Snapshot, color bool) error {
	out := termenv.NewOutput(w)
	if !color {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	var b strings.Builder
	for _, osn := range sn.Objects {
		writeTreeObject(&b, out, osn, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTreeObject(b *strings.Builder, out *termenv.Output, osn *sceneio.ObjectSnapshot, depth int) {
	typ := out.String(osn.Type).Foreground(out.Color("6"))
	if osn.Type == "group" {
		typ = typ.Bold()
	}
	name := out.String(osn.Name).Foreground(out.Color("3"))
	fmt.Fprintf(b, "%s%s %s %gx%g at (%g, %g) center (%g, %g)", strings.Repeat("  ", depth), typ, name,
		osn.Width, osn.Height, osn.Left, osn.Top, osn.Center[0], osn.Center[1])
	if osn.Angle != 0 {
		fmt.Fprintf(b, " angle %g", osn.Angle)
	}
	b.WriteByte('\n')
	for _, ch := range osn.Objects {
		writeTreeObject(b, out, ch, depth+1)
	}
}
