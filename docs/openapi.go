package docs

import _ "embed"

// OpenAPI is the OpenAPI 3 description of the service, served at
// /openapi.yaml and used to check handler responses in tests.
//
//go:embed openapi.yaml
var OpenAPI []byte
