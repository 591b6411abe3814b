// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"strings"
	"unicode/utf8"

	"cogentcore.org/canvas/events"
)

// Text is a text leaf object, which is sized to fit its text
// using a fixed advance per character.
type Text struct {
	ObjectBase

	// Text is the text, which can have multiple lines.
	Text string `json:"text" yaml:"text" toml:"text"`

	// FontSize is the size of the font, in pixels.
	FontSize float32 `json:"fontSize" yaml:"fontSize" toml:"fontSize"`

	// LineHeight is the height of each line as a multiple of FontSize.
	LineHeight float32 `json:"lineHeight" yaml:"lineHeight" toml:"lineHeight"`

	// CharWidth is the advance of each character as a multiple of FontSize.
	CharWidth float32 `json:"charWidth" yaml:"charWidth" toml:"charWidth"`
}

// NewText returns a new [Text] with the given text, with its
// top-left corner at the given position.
func NewText(text string, left, top float32) *Text {
	tx := &Text{}
	tx.init(tx)
	tx.Defaults()
	tx.Left, tx.Top = left, top
	tx.Text = text
	tx.UpdateSize()
	return tx
}

func (tx *Text) TypeName() string { return "text" }

func (tx *Text) Defaults() {
	tx.FontSize = 16
	tx.LineHeight = 1.16
	tx.CharWidth = 0.6
}

// UpdateSize sets the size of the text object to fit its text.
func (tx *Text) UpdateSize() {
	lines := strings.Split(tx.Text, "\n")
	maxc := 0
	for _, ln := range lines {
		maxc = max(maxc, utf8.RuneCountInString(ln))
	}
	tx.Width = float32(maxc) * tx.CharWidth * tx.FontSize
	tx.Height = float32(len(lines)) * tx.LineHeight * tx.FontSize
	tx.SetDirty()
}

// SetText sets the text, resizes the object to fit it, and sends
// an [events.TextChanged] event, which lays out the group of the text.
func (tx *Text) SetText(text string) {
	if tx.Text == text {
		return
	}
	tx.Text = text
	tx.UpdateSize()
	tx.InvalidateCoords()
	tx.Fire(events.TextChanged)
}
