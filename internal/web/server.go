package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/auth"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server bundles everything the web tier's handlers need: the credential
// checker, the session manager and the API client.
type Server struct {
	Auth     *auth.Authenticator
	Sessions *auth.SessionManager
	API      *Client
}

func NewServer(a *auth.Authenticator, sm *auth.SessionManager, api *Client) *Server {
	return &Server{Auth: a, Sessions: sm, API: api}
}

// Renderer adapts html/template to Echo's Renderer interface. Templates
// are compiled once at startup from the embedded FS.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
