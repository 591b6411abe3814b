// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"cogentcore.org/canvas/events"
	"github.com/stretchr/testify/assert"
)

func TestTypesString(t *testing.T) {
	assert.Equal(t, "initialization", Initialization.String())
	assert.Equal(t, "object_modified", ObjectModified.String())
	assert.Equal(t, "object_modifying", ObjectModifying.String())
	assert.Equal(t, "imperative", Imperative.String())
	assert.Equal(t, "unknown", Types(42).String())
}

func TestContextConstructors(t *testing.T) {
	tests := []struct {
		ctx     *Context
		typ     Types
		trigger Trigger
		targets int
	}{
		{NewInitialization(nil, nil, nil), Initialization, TriggerInitialization, 2},
		{NewAdded(nil, nil), Added, TriggerAdded, 1},
		{NewRemoved(nil, nil, nil, nil), Removed, TriggerRemoved, 3},
		{NewImperative(nil), Imperative, TriggerImperative, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.typ, tt.ctx.Type())
		assert.Equal(t, tt.trigger, tt.ctx.Trigger)
		assert.Len(t, tt.ctx.Targets(), tt.targets)
	}
}

func TestNewObjectEvent(t *testing.T) {
	for _, tp := range events.TriggerTypes {
		ctx := NewObjectEvent(nil, events.NewTrigger(tp, nil))
		assert.Equal(t, Trigger(tp.String()), ctx.Trigger)
		assert.Nil(t, ctx.Targets())
		switch tp {
		case events.Modified, events.TextChanged:
			assert.Equal(t, ObjectModified, ctx.Type(), tp)
			assert.Equal(t, tp, ctx.Payload.(*ObjectModifiedPayload).Event.Type())
		default:
			assert.Equal(t, ObjectModifying, ctx.Type(), tp)
			assert.Equal(t, tp, ctx.Payload.(*ObjectModifyingPayload).Event.Type())
		}
	}
	assert.Equal(t, Trigger("text:changed"), TriggerFor(events.TextChanged))
}

func TestStrictContextPropagation(t *testing.T) {
	sc := &StrictContext{Context: *NewImperative(nil)}
	assert.True(t, sc.Bubbles())
	sc.StopPropagation()
	assert.False(t, sc.Bubbles())
}
