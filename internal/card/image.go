package card

import (
	"encoding/base64"
	"errors"
	"strings"
)

const PNGMIMEType = "image/png"

var ErrNotDataURI = errors.New("image reference is not a base64 data URI")

// PNGDataURI embeds PNG bytes in a self-contained data URI
func PNGDataURI(data []byte) string {
	return "data:" + PNGMIMEType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI returns the MIME type and bytes of a base64 data URI
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrNotDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mimeType, data, nil
}

// Artwork returns the decoded bytes of the card's image
func (c Card) Artwork() ([]byte, error) {
	_, data, err := DecodeDataURI(c.ImageURL)
	return data, err
}
