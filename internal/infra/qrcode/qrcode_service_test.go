package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"adboard/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_AdLink(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://board.example.com/")

	assert.Equal(t, "https://board.example.com/ads/42", service.AdLink(42))
}

func TestQRCodeService_GenerateAdQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://board.example.com")

	qrBytes, err := service.GenerateAdQR(7)
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "")

		qrBytes, err := service.GenerateAdQR(1)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestNew_Defaults(t *testing.T) {
	service := New(&config.Config{})

	assert.Equal(t, defaultBaseURL+"/ads/3", service.AdLink(3))
}
