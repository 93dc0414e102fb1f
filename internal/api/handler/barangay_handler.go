package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bms-ph/records-system/internal/core/ports"
)

// BarangayHandler exposes tenant administration. The router gates every route
// behind super_admin plus an unrestricted scope; a super_admin bound to a
// barangay never reaches these handlers.
type BarangayHandler struct {
	service ports.BarangayService
}

func NewBarangayHandler(service ports.BarangayService) *BarangayHandler {
	return &BarangayHandler{service: service}
}

type createBarangayRequest struct {
	Name         string `json:"name" validate:"required"`
	Municipality string `json:"municipality" validate:"required"`
	Province     string `json:"province" validate:"required"`
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// Create handles POST /v1/barangays.
//
// @Summary      Register a barangay
// @Tags         barangays
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBarangayRequest  true  "Barangay details"
// @Success      201   {object}  domain.Barangay
// @Failure      403   {object}  map[string]string
// @Router       /v1/barangays [post]
func (h *BarangayHandler) Create(c echo.Context) error {
	var req createBarangayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	b, err := h.service.Create(c.Request().Context(), ports.CreateBarangayInput{
		Name:         req.Name,
		Municipality: req.Municipality,
		Province:     req.Province,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

// List handles GET /v1/barangays.
//
// @Summary      List all barangays
// @Tags         barangays
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Barangay
// @Router       /v1/barangays [get]
func (h *BarangayHandler) List(c echo.Context) error {
	bs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bs)
}

// SetActive handles PATCH /v1/barangays/:id/active. Deactivation locks out the
// barangay's principals on their next request.
//
// @Summary      Activate or deactivate a barangay
// @Tags         barangays
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string            true  "Barangay id"
// @Param        body  body  setActiveRequest  true  "Active flag"
// @Success      204   "updated"
// @Failure      404   {object}  map[string]string
// @Router       /v1/barangays/{id}/active [patch]
func (h *BarangayHandler) SetActive(c echo.Context) error {
	var req setActiveRequest
	if err := c.Bind(&req); err != nil || req.Active == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	if err := h.service.SetActive(c.Request().Context(), c.Param("id"), *req.Active); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
