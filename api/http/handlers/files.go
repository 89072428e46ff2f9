package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/vbncursed/skillscan/api/http/presenter"
)

// FilesHandler serves stored resume documents back unchanged.
type FilesHandler struct {
	baseDir string
}

func NewFilesHandler(baseDir string) *FilesHandler { return &FilesHandler{baseDir: baseDir} }

// Download streams a stored resume by its filename reference.
// @Summary Download stored resume
// @Tags    applicants
// @Produce application/octet-stream
// @Param   filename path string true "stored resume filename"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /uploads/{filename} [get]
func (h *FilesHandler) Download(c *fiber.Ctx) error {
	name := c.Params("filename")
	// the reference is a bare filename; anything path-like is rejected
	if name == "" || name != filepath.Base(name) || name[0] == '.' {
		return presenter.Error(c, http.StatusBadRequest, "invalid filename")
	}
	path := filepath.Join(h.baseDir, name)
	if _, err := os.Stat(path); err != nil {
		return presenter.Error(c, http.StatusNotFound, "file not found")
	}
	return c.Download(path, name)
}
