package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 1},
		{0.1, MinZoom},
		{3, MaxZoom},
		{0.8, 0.8},
		{0.7000000001, 0.7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampZoom(tt.in))
	}
}

func TestZoomSteps(t *testing.T) {
	assert.Equal(t, 0.9, ZoomIn(0.8))
	assert.Equal(t, 0.7, ZoomOut(0.8))
	assert.Equal(t, MaxZoom, ZoomIn(MaxZoom))
	assert.Equal(t, MinZoom, ZoomOut(MinZoom))
}

func TestDefaultZoom(t *testing.T) {
	assert.Equal(t, 0.9, DefaultZoom(1440))
	assert.Equal(t, 0.7, DefaultZoom(1100))
	assert.Equal(t, 0.5, DefaultZoom(600))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "Pratima_Singh.pdf", ExportFilename("Pratima Singh"))
	assert.Equal(t, "Resume.pdf", ExportFilename(""))
	assert.Equal(t, "J__Doe_Jr_.pdf", ExportFilename("J. Doe-Jr."))
}
