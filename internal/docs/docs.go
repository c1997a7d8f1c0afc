// Раздача OpenAPI-описания API из встроенных файлов (embed).
package docs

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed openapi/*
var openapiFS embed.FS

// FS — встроенная папка openapi для HTTP file server (без префикса "openapi" в путях).
var FS http.FileSystem = mustSub()

func mustSub() http.FileSystem {
	sub, err := fs.Sub(openapiFS, "openapi")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
