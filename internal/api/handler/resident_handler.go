package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

// ResidentHandler handles HTTP requests for resident records.
type ResidentHandler struct {
	service ports.ResidentService
}

func NewResidentHandler(service ports.ResidentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

type residentRequest struct {
	BarangayID  string `json:"barangay_id"`
	FirstName   string `json:"first_name" validate:"required"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name" validate:"required"`
	BirthDate   string `json:"birth_date" validate:"required"`
	Sex         string `json:"sex" validate:"required,oneof=male female"`
	CivilStatus string `json:"civil_status" validate:"required,oneof=single married widowed separated"`
	Address     string `json:"address" validate:"required"`
	Contact     string `json:"contact"`
	HouseholdID string `json:"household_id"`
	IsVoter     bool   `json:"is_voter"`
}

func (r residentRequest) toInput() (ports.ResidentInput, error) {
	birthDate, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return ports.ResidentInput{}, err
	}
	return ports.ResidentInput{
		BarangayID:  r.BarangayID,
		FirstName:   r.FirstName,
		MiddleName:  r.MiddleName,
		LastName:    r.LastName,
		BirthDate:   birthDate,
		Sex:         r.Sex,
		CivilStatus: domain.CivilStatus(r.CivilStatus),
		Address:     r.Address,
		Contact:     r.Contact,
		HouseholdID: r.HouseholdID,
		IsVoter:     r.IsVoter,
	}, nil
}

// Create handles POST /v1/residents.
//
// @Summary      Register a resident
// @Tags         residents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      residentRequest  true  "Resident details"
// @Success      201   {object}  domain.Resident
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/residents [post]
func (h *ResidentHandler) Create(c echo.Context) error {
	var req residentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	_, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "birth_date must be YYYY-MM-DD"})
	}

	resident, err := h.service.Create(c.Request().Context(), scope, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resident)
}

// Get handles GET /v1/residents/:id.
//
// @Summary      Get a resident by id
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Resident id"
// @Success      200  {object}  domain.Resident
// @Failure      404  {object}  map[string]string
// @Router       /v1/residents/{id} [get]
func (h *ResidentHandler) Get(c echo.Context) error {
	_, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	resident, err := h.service.Get(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}

// List handles GET /v1/residents.
//
// @Summary      List residents in scope
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Param        search        query     string  false  "Name search"
// @Param        household_id  query     string  false  "Household filter"
// @Param        voters_only   query     bool    false  "Registered voters only"
// @Param        limit         query     int     false  "Page size"
// @Param        offset        query     int     false  "Page offset"
// @Success      200  {array}  domain.Resident
// @Router       /v1/residents [get]
func (h *ResidentHandler) List(c echo.Context) error {
	_, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	offset, _ := strconv.ParseInt(c.QueryParam("offset"), 10, 64)
	votersOnly, _ := strconv.ParseBool(c.QueryParam("voters_only"))

	residents, err := h.service.List(c.Request().Context(), scope, ports.ResidentQuery{
		Search:      c.QueryParam("search"),
		HouseholdID: c.QueryParam("household_id"),
		VotersOnly:  votersOnly,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, residents)
}

// Update handles PUT /v1/residents/:id.
//
// @Summary      Update a resident
// @Tags         residents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Resident id"
// @Param        body  body      residentRequest  true  "Resident details"
// @Success      200   {object}  domain.Resident
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/residents/{id} [put]
func (h *ResidentHandler) Update(c echo.Context) error {
	var req residentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	_, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "birth_date must be YYYY-MM-DD"})
	}

	resident, err := h.service.Update(c.Request().Context(), scope, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}

// Delete handles DELETE /v1/residents/:id.
//
// @Summary      Delete a resident
// @Tags         residents
// @Security     BearerAuth
// @Param        id  path  string  true  "Resident id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/residents/{id} [delete]
func (h *ResidentHandler) Delete(c echo.Context) error {
	_, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), scope, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
