package utils

import (
	"fmt"
	"image/color"
	"net/http"
	"os"
	"strings"
)

// Contains returns true if the e element can be found in the slice.
func Contains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

// HexToRGBA converts a color expressed as a hexadecimal string to NRGBA.
// Accepted forms are "#rgb", "#rrggbb" and "#rrggbbaa", with or without
// the leading "#".
func HexToRGBA(x string) color.NRGBA {
	var r, g, b uint8
	a := uint8(0xff)

	x = strings.TrimPrefix(x, "#")
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// DetectFileContentType detects the file type by reading MIME type information of the file content.
func DetectFileContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil {
		return "", err
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(buffer), nil
}
