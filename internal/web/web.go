package web

import "embed"

//go:embed static/*.html
var pages embed.FS

// Page returns an embedded HTML page by file name. Missing pages are a
// build mistake, not a runtime condition.
func Page(name string) []byte {
	b, err := pages.ReadFile("static/" + name)
	if err != nil {
		panic(err)
	}
	return b
}
