package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticSmoothing(t *testing.T) {
	d := NewDiagnostic(DiagnosticFPS, 20)

	_, ok := d.Smoothed()
	assert.False(t, ok, "no samples yet")

	d.Add(60)
	v, ok := d.Smoothed()
	require.True(t, ok)
	assert.Equal(t, 60.0, v)

	d.Add(39)
	v, _ = d.Smoothed()
	assert.InDelta(t, 60+(39-60)*2.0/21, v, 1e-9)

	last, _ := d.Value()
	assert.Equal(t, 39.0, last)
	avg, _ := d.Average()
	assert.InDelta(t, 49.5, avg, 1e-9)
}

func TestDiagnosticHistoryIsBounded(t *testing.T) {
	d := NewDiagnostic(DiagnosticFrameTime, 3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		d.Add(v)
	}
	avg, ok := d.Average()
	require.True(t, ok)
	assert.InDelta(t, 4.0, avg, 1e-9)
}

func TestRecordFrame(t *testing.T) {
	store := NewFrameTimeDiagnostics()

	store.RecordFrame(0)
	fps, ok := store.Get(DiagnosticFPS)
	require.True(t, ok)
	_, ok = fps.Smoothed()
	assert.False(t, ok, "zero-length frame gives no sample")
	assert.Equal(t, uint64(1), store.FrameCount())

	store.RecordFrame(20 * time.Millisecond)
	v, ok := fps.Smoothed()
	require.True(t, ok)
	assert.InDelta(t, 50.0, v, 1e-9)

	ft, _ := store.Get(DiagnosticFrameTime)
	ms, _ := ft.Value()
	assert.InDelta(t, 20.0, ms, 1e-9)
	assert.Equal(t, uint64(2), store.FrameCount())
}
