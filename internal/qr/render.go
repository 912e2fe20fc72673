// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package qr

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	dataURLPrefix = "data:image/png;base64,"

	// imageSize is the side of the rendered PNG in pixels.
	imageSize = 300
)

// Render encodes content into a QR code and returns it as a PNG data URL.
func Render(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderingFailed, err)
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
