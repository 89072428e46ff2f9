package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vbncursed/skillscan/api/http/presenter"
	"github.com/vbncursed/skillscan/pkg/applicant"
	"github.com/vbncursed/skillscan/pkg/history"
	"github.com/vbncursed/skillscan/pkg/jobrole"
)

type ApplicantsHandler struct {
	uc      applicant.UseCase
	hist    history.UseCase
	defSize int
	maxSize int
}

func NewApplicantsHandler(uc applicant.UseCase, hist history.UseCase, defaultPageSize, maxPageSize int) *ApplicantsHandler {
	return &ApplicantsHandler{uc: uc, hist: hist, defSize: defaultPageSize, maxSize: maxPageSize}
}

type createApplicantRequest struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone"`
	Skills []string `json:"skills"`
	Resume string   `json:"resume"`
}

// Create ingests one already-extracted scan record.
// @Summary Create applicant
// @Description Stores extracted contact fields, skills and the resume reference.
// @Tags    applicants
// @Accept  json
// @Produce json
// @Param   input body createApplicantRequest true "extracted applicant data"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /applicants [post]
func (h *ApplicantsHandler) Create(c *fiber.Ctx) error {
	var req createApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	a, err := h.uc.Create(c.Context(), applicant.Applicant{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Skills: req.Skills,
		Resume: req.Resume,
	})
	if err != nil {
		var ve applicant.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		return presenter.Error(c, http.StatusServiceUnavailable, "failed to save applicant")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{"applicant": a})
}

// List returns a page of the scan history, optionally annotated with match
// percentages against a selected job role.
// @Summary Scan history
// @Tags    applicants
// @Produce json
// @Param   page query int false "1-indexed page" default(1)
// @Param   limit query int false "page size" default(10)
// @Param   search query string false "substring filter over name/email/phone"
// @Param   jobRoleId query string false "job role to annotate match percentages with"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applicants [get]
func (h *ApplicantsHandler) List(c *fiber.Ctx) error {
	page, pageSize := parsePageQuery(c, h.defSize, h.maxSize)
	q := history.Query{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	if v := strings.TrimSpace(c.Query("jobRoleId")); v != "" {
		roleID, err := uuid.Parse(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid jobRoleId")
		}
		q.JobRoleID = &roleID
	}
	entries, total, err := h.hist.List(c.Context(), q)
	if err != nil {
		var ve history.ErrValidation
		switch {
		case errors.As(err, &ve):
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		case errors.Is(err, jobrole.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "job role not found")
		default:
			return presenter.Error(c, http.StatusServiceUnavailable, "failed to list applicants")
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"applicants": entries,
		"total":      total,
	})
}

// Get returns one scan record by id.
// @Summary Get applicant
// @Tags    applicants
// @Produce json
// @Param   id path string true "applicant id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applicants/{id} [get]
func (h *ApplicantsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	a, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, applicant.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "applicant not found")
		}
		return presenter.Error(c, http.StatusServiceUnavailable, "failed to load applicant")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"applicant": a})
}

// Delete permanently removes a scan record; there is no soft delete.
// @Summary Delete applicant
// @Tags    applicants
// @Produce json
// @Param   id path string true "applicant id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applicants/{id} [delete]
func (h *ApplicantsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, applicant.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "applicant not found")
		}
		return presenter.Error(c, http.StatusServiceUnavailable, "failed to delete applicant")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Applicant deleted successfully"})
}
