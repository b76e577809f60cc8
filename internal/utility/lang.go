package utility

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

var detector = lingua.NewLanguageDetectorBuilder().
	FromLanguages(
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Russian,
	).
	Build()

// LangDetect returns the ISO 639-1 code of the detected language,
// falling back to English when the text is too short to classify.
func LangDetect(text string) string {
	query := strings.TrimSpace(text)

	lang, ok := detector.DetectLanguageOf(query)
	if !ok {
		return strings.ToLower(lingua.English.IsoCode639_1().String())
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
