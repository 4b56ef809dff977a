// Copyright (c) 2026 Waveline Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package utils

import "strings"

// MediaKeyFromURL derives the storage object key from a public media URL.
// The key is the last path segment with any file extension stripped, so
// "https://cdn.example.com/media/abc123.jpg" yields "abc123" and keys
// stored without an extension come back unchanged.
func MediaKeyFromURL(url string) string {
	segment := url
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	if idx := strings.LastIndex(segment, "."); idx >= 0 {
		segment = segment[:idx]
	}
	return segment
}
