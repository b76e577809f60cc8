// Package api carries the OpenAPI document served at /apidocs. Embedding it
// keeps the docs endpoint working no matter where the binary runs from.
package api

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte
