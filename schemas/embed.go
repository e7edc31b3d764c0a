package schemas

import "embed"

// SchemasFS содержит все JSON-схемы запросов сервиса.
//
//go:embed requests
var SchemasFS embed.FS
