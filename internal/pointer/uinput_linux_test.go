//go:build linux

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/wiggle-mouse/internal/pointer"
	"github.com/stigoleg/wiggle-mouse/internal/pointer/pointertest"
)

func TestUinputNudgerDelegates(t *testing.T) {
	base := pointertest.New(pointer.Position{X: 3, Y: 4})
	u := &pointer.UinputNudger{Base: base}

	pos, err := u.Position()
	require.NoError(t, err)
	assert.Equal(t, pointer.Position{X: 3, Y: 4}, pos)

	require.NoError(t, u.MoveTo(pointer.Position{X: 7, Y: 8}))
	assert.Equal(t, pointer.Position{X: 7, Y: 8}, base.Pos)
	assert.Equal(t, pointertest.KindMoveTo, base.Calls[0].Kind)
}

func TestUinputNudgerWithoutDevice(t *testing.T) {
	u := &pointer.UinputNudger{Base: pointertest.New(pointer.Position{})}

	assert.Error(t, u.Nudge(pointer.Position{X: 1}))
	assert.NoError(t, u.Close())
}
