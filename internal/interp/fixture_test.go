package interp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// TestShowcaseFixture runs a program exercising types, operators,
// properties, methods, statics, Vec, strings, and loops end to end,
// and snapshots everything it prints.
func TestShowcaseFixture(t *testing.T) {
	i, out := newTestInterpreter()

	_, err := i.ExecuteFile(filepath.Join("testdata", "showcase.fru.json"))
	require.NoError(t, err)

	snaps.MatchSnapshot(t, out.String())
}

// TestShowcaseOutput pins the exact output, independent of the
// snapshot tooling.
func TestShowcaseOutput(t *testing.T) {
	i, out := newTestInterpreter()

	_, err := i.ExecuteFile(filepath.Join("testdata", "showcase.fru.json"))
	require.NoError(t, err)

	require.Equal(t,
		"Vector{x=3, y=4} 5 7\n"+
			"[go, 0, 1, 2] nananana batman\n"+
			"0 done\n",
		out.String())
}
