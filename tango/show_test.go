package tango_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/tangotree/tango"
)

func TestShowTangoFreshBuild(t *testing.T) {
	root, err := tango.Build(3)
	require.NoError(t, err)

	want := "   (1, d=1)\n" + "\x1b[31m(2, d=0)\x1b[0m\n" + "   (3, d=1)\n"
	assert.Equal(t, want, tango.ShowTango(root))
}

func TestShowTangoColorsOnlyRegular(t *testing.T) {
	root, err := tango.Build(15)
	require.NoError(t, err)
	root = tango.SearchTango(root, 4, nil)

	out := tango.ShowTango(root)
	assert.Contains(t, out, "\x1b[31m(4, d=1)\x1b[0m")
	assert.Contains(t, out, "\x1b[31m(8, d=0)\x1b[0m")
	assert.NotContains(t, out, "\x1b[31m(2, d=2)\x1b[0m")
	assert.Contains(t, out, "(2, d=2)\n")
}
