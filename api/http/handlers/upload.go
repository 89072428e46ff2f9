package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vbncursed/skillscan/api/http/presenter"
	"github.com/vbncursed/skillscan/pkg/applicant"
	"github.com/vbncursed/skillscan/pkg/extract"
	"github.com/vbncursed/skillscan/pkg/jobrole"
)

// UploadHandler turns an uploaded resume file into a scan record: it stores
// the file, extracts text, contact fields and skills, and creates the
// applicant. The skill dictionary is the built-in vocabulary extended with
// every configured job role's skills, so required skills are always
// detectable in a resume that states them.
type UploadHandler struct {
	applicants applicant.UseCase
	roles      jobrole.Repository
	baseDir    string
	maxBytes   int64
}

func NewUploadHandler(applicants applicant.UseCase, roles jobrole.Repository, baseDir string, maxUploadMB int) *UploadHandler {
	return &UploadHandler{
		applicants: applicants,
		roles:      roles,
		baseDir:    baseDir,
		maxBytes:   int64(maxUploadMB) << 20,
	}
}

// Upload scans one resume and creates an applicant record.
// @Summary Upload and scan resume
// @Description Accepts a PDF or DOCX resume, extracts contact fields and skills and stores the scan record.
// @Tags    applicants
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "resume file (PDF or DOCX)"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /upload-resume [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	text, err := extract.Text(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to parse resume: %v", err))
	}

	vocab := append([]string(nil), extract.DefaultVocabulary...)
	if roles, err := h.roles.List(c.Context()); err == nil {
		for _, r := range roles {
			vocab = append(vocab, r.Skills...)
		}
	}
	contact := extract.ContactInfo(text)
	found := extract.SkillList(text, vocab)

	if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
	}
	storedName := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(h.baseDir, storedName), data, 0o644); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
	}

	a, err := h.applicants.Create(c.Context(), applicant.Applicant{
		Name:   contact.Name,
		Email:  contact.Email,
		Phone:  contact.Phone,
		Skills: found,
		Resume: storedName,
	})
	if err != nil {
		// no record points at the stored file, remove it
		_ = os.Remove(filepath.Join(h.baseDir, storedName))
		return presenter.Error(c, http.StatusInternalServerError, "failed to save applicant")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"message":   "Resume uploaded successfully",
		"applicant": a,
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
