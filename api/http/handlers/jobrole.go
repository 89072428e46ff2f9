package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vbncursed/skillscan/api/http/presenter"
	"github.com/vbncursed/skillscan/pkg/jobrole"
)

type JobRoleHandler struct {
	uc jobrole.UseCase
}

func NewJobRoleHandler(uc jobrole.UseCase) *JobRoleHandler { return &JobRoleHandler{uc: uc} }

type jobRoleRequest struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Create adds a job role with its required skills.
// @Summary Create job role
// @Tags    job-roles
// @Accept  json
// @Produce json
// @Param   input body jobRoleRequest true "job role payload"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /job-roles [post]
func (h *JobRoleHandler) Create(c *fiber.Ctx) error {
	var req jobRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	role, err := h.uc.Create(c.Context(), req.Name, req.Skills)
	if err != nil {
		return jobRoleError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{"jobRole": role})
}

// List returns every job role; the set is small and unpaginated.
// @Summary List job roles
// @Tags    job-roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /job-roles [get]
func (h *JobRoleHandler) List(c *fiber.Ctx) error {
	roles, err := h.uc.List(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusServiceUnavailable, "failed to list job roles")
	}
	if roles == nil {
		roles = []jobrole.JobRole{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"jobRoles": roles})
}

// Update replaces a role's name and skill list.
// @Summary Update job role
// @Tags    job-roles
// @Accept  json
// @Produce json
// @Param   id path string true "job role id (UUID)"
// @Param   input body jobRoleRequest true "job role payload"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /job-roles/{id} [patch]
func (h *JobRoleHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req jobRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	role, err := h.uc.Update(c.Context(), id, req.Name, req.Skills)
	if err != nil {
		return jobRoleError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"jobRole": role})
}

// Delete removes a role. Applicant records are not touched: matching is by
// skill value, so history rows keep working without the role.
// @Summary Delete job role
// @Tags    job-roles
// @Produce json
// @Param   id path string true "job role id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /job-roles/{id} [delete]
func (h *JobRoleHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	role, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return jobRoleError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "Job role deleted successfully",
		"jobRole": role,
	})
}

func jobRoleError(c *fiber.Ctx, err error) error {
	var ve jobrole.ErrValidation
	switch {
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, jobrole.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "job role not found")
	default:
		return presenter.Error(c, http.StatusServiceUnavailable, "storage unavailable")
	}
}
