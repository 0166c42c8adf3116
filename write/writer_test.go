package write

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticData struct {
	iter int
	loc  float64
}

func (s *staticData) AppendWriteData(v []*Value) []*Value {
	v = append(v, &Value{Heading: "Iter", Value: s.iter})
	v = append(v, &Value{Heading: "Loc", Value: s.loc})
	return v
}

func TestLoggerWritesCSV(t *testing.T) {
	var buf bytes.Buffer
	data := &staticData{iter: 0, loc: 1.5}

	d := NewDisplay()
	d.AddDataAdder(data)
	require.NoError(t, d.Init(&WriteSettings{
		DisplayWriters: []Writer{{&buf, Logger}},
	}))

	data.iter, data.loc = 1, 0.5
	require.NoError(t, d.Iterate())
	data.iter, data.loc = 2, 0.25
	require.NoError(t, d.Iterate())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Iter,Loc", lines[0])
	assert.Equal(t, "1,5.000000e-01", lines[1])
	assert.Equal(t, "2,2.500000e-01", lines[2])
}

func TestDisplayerAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	data := &staticData{}

	d := NewDisplay()
	d.AddDataAdder(data)
	require.NoError(t, d.Init(&WriteSettings{
		DisplayWriters: []Writer{{&buf, Displayer}},
	}))

	data.iter, data.loc = 1, 0.5
	require.NoError(t, d.Iterate())

	out := buf.String()
	assert.Contains(t, out, "Iter")
	assert.Contains(t, out, "Loc")
	assert.Contains(t, out, "5.000000e-01")
}

func TestNoWritersIsSilent(t *testing.T) {
	d := NewDisplay()
	d.AddDataAdder(&staticData{})
	require.NoError(t, d.Init(&WriteSettings{}))
	require.NoError(t, d.Iterate())
}

func TestWarningf(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay()
	require.NoError(t, d.Init(&WriteSettings{WarningWriter: &buf}))

	d.Warningf("step magnitude %e is large", 2e6)
	assert.Equal(t, "warning: step magnitude 2.000000e+06 is large\n", buf.String())

	// A nil warning writer drops warnings.
	d2 := NewDisplay()
	require.NoError(t, d2.Init(&WriteSettings{}))
	d2.Warningf("dropped")
}
