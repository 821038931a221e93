// Package postprocess applies fixed corrections to model output.
package postprocess

import "strings"

// Known misrecognition and its correction.
const (
	misrecognized = "クラシャ"
	corrected     = "コラショ"
)

// Normalize replaces every occurrence of the known misrecognition.
func Normalize(text string) string {
	return strings.ReplaceAll(text, misrecognized, corrected)
}
