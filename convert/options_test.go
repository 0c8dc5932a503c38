// SPDX-License-Identifier: MIT

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixmat/convert"
)

func TestOptionsDefaults(t *testing.T) {
	require.Equal(t, convert.DefaultPath, convert.OptionsPathForTest())
	require.Equal(t, convert.PathAuto, convert.OptionsPathForTest(nil))
	require.Equal(t, convert.PathFallback,
		convert.OptionsPathForTest(convert.WithPath(convert.PathFast), convert.WithPath(convert.PathFallback)))
}

func TestWithPathPanics(t *testing.T) {
	require.Panics(t, func() { convert.WithPath(convert.Path(7)) })
	require.Panics(t, func() { convert.WithPath(convert.Path(-1)) })
}

func TestParsePath(t *testing.T) {
	for _, p := range []convert.Path{convert.PathAuto, convert.PathFast, convert.PathFallback} {
		got, err := convert.ParsePath(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	got, err := convert.ParsePath("FallBack")
	require.NoError(t, err)
	require.Equal(t, convert.PathFallback, got)

	_, err = convert.ParsePath("zero-copy")
	require.ErrorIs(t, err, convert.ErrBadPath)
	require.Equal(t, "Path(9)", convert.Path(9).String())
}
