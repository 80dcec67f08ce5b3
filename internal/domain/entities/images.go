package entities

import "strings"

// MaxImagePayloadBytes bounds the data URLs kept on one estimate. The whole
// record must fit a single DynamoDB item (400 KB) next to the other fields.
const MaxImagePayloadBytes = 300 << 10

// IsImageDataURL reports whether s has the `data:{mime};base64,{payload}` shape.
func IsImageDataURL(s string) bool {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return false
	}
	mime, payload, ok := strings.Cut(rest, ";base64,")
	return ok && mime != "" && !strings.ContainsAny(mime, ", ") && payload != ""
}

// ImagesSize is the number of bytes the images occupy in storage.
func ImagesSize(images []string) int {
	n := 0
	for _, img := range images {
		n += len(img)
	}
	return n
}
