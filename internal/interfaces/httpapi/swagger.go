package httpapi

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"html/template"
	"net/http"
)

//go:embed openapi.yaml
var openAPISpec []byte

const (
	openAPIPath     = "/openapi.yaml"
	swaggerUIBundle = "https://unpkg.com/swagger-ui-dist@5"
)

var openAPIETag = func() string {
	sum := sha256.Sum256(openAPISpec)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}()

var swaggerPage = template.Must(template.New("docs").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="{{.Bundle}}/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="{{.Bundle}}/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({ url: {{.SpecURL}}, dom_id: '#swagger-ui', deepLinking: true });
    </script>
  </body>
</html>`))

// OpenAPI serves the embedded document with a content-hash ETag.
func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenAPI")
	defer span.End()

	w.Header().Set("ETag", openAPIETag)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if r.Header.Get("If-None-Match") == openAPIETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(openAPISpec); err != nil {
		h.logger.DebugContext(ctx, "write openapi document failed", "error", err)
	}
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SwaggerUI")
	defer span.End()

	var buf bytes.Buffer
	err := swaggerPage.Execute(&buf, struct {
		Title   string
		Bundle  string
		SpecURL string
	}{
		Title:   "Venue Insight API Docs",
		Bundle:  swaggerUIBundle,
		SpecURL: openAPIPath,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "render api docs failed", "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
