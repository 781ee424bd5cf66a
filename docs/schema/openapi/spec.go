// Package openapi distributes the tracker's HTTP API document from the
// docs tree.
package openapi

import _ "embed"

// APISpec contains the OpenAPI document for the tracker's HTTP surface.
//
//go:embed openapi.yaml
var APISpec []byte

// Spec returns a defensive copy of the embedded OpenAPI document.
func Spec() []byte {
	return append([]byte(nil), APISpec...)
}
