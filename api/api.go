// Package api carries the embedded OpenAPI contract of the service.
package api

import _ "embed"

// OpenAPISpec is the raw OpenAPI 3 document. It is validated at startup and
// served as JSON by the HTTP server.
//
//go:embed openapi.yml
var OpenAPISpec []byte
