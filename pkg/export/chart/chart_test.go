package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "Arps Forecast: test", []float64{300, 200, 150, 120, 100})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Arps Forecast: test")
	assert.Contains(t, html, "Monthly rate")
	assert.Contains(t, html, "Cumulative")
}

func TestRender_EmptySeries(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "empty", nil)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
