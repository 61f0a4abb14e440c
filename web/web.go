// Package web embute a página de pesquisa servida em "/".
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Handler serve index.html, app.js e style.css a partir do binário.
func Handler() http.Handler {
	static, err := fs.Sub(content, "static")
	if err != nil {
		// "static" é embutido em tempo de compilação; só falha se o diretório sumir do repositório.
		panic(err)
	}
	return http.FileServer(http.FS(static))
}
