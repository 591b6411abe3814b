// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

// DebugSettingsData has the debugging settings for layout.
type DebugSettingsData struct {

	// LayoutTrace prints a trace of every layout pass.
	LayoutTrace bool

	// LayoutTraceDetail also prints every child that is moved.
	LayoutTraceDetail bool
}

// DebugSettings are the current debugging settings for layout.
var DebugSettings = &DebugSettingsData{}
