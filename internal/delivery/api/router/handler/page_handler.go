package handler

import (
	"io/fs"
	"net/http"

	"pizarra/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the embedded HTML pages.
type PageHandler struct {
	index echo.HandlerFunc
	login echo.HandlerFunc
}

// NewPageHandler creates a PageHandler serving index.html and login.html from pages.
func NewPageHandler(pages fs.FS) *PageHandler {
	return &PageHandler{
		index: echo.StaticFileHandler("index.html", pages),
		login: echo.StaticFileHandler("login.html", pages),
	}
}

// Index serves the registration landing page.
func (h *PageHandler) Index(c echo.Context) error {
	return h.index(c)
}

// Login serves the login page.
func (h *PageHandler) Login(c echo.Context) error {
	return h.login(c)
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Service is healthy")
}
