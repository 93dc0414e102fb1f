package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
)

type DocumentRequestHandler struct {
	service ports.DocumentRequestService
}

func NewDocumentRequestHandler(service ports.DocumentRequestService) *DocumentRequestHandler {
	return &DocumentRequestHandler{service: service}
}

type createDocumentRequest struct {
	BarangayID string `json:"barangay_id"`
	Type       string `json:"type" validate:"required,oneof=barangay_clearance certificate_of_residency certificate_of_indigency business_clearance"`
	Purpose    string `json:"purpose" validate:"required"`
}

type advanceDocumentRequest struct {
	Status  string `json:"status" validate:"required,oneof=processing released rejected"`
	Remarks string `json:"remarks"`
}

// Create handles POST /v1/document-requests — residents file their own requests.
//
// @Summary      File a document request
// @Tags         document-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDocumentRequest  true  "Request details"
// @Success      201   {object}  domain.DocumentRequest
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/document-requests [post]
func (h *DocumentRequestHandler) Create(c echo.Context) error {
	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	user, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	dr, err := h.service.Create(c.Request().Context(), scope, user.ID, ports.CreateDocumentRequestInput{
		BarangayID: req.BarangayID,
		Type:       domain.DocumentType(req.Type),
		Purpose:    req.Purpose,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dr)
}

// Get handles GET /v1/document-requests/:id. Residents see only their own
// requests; a foreign request reports not found, same as the list filter.
//
// @Summary      Get a document request
// @Tags         document-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Request id"
// @Success      200  {object}  domain.DocumentRequest
// @Failure      404  {object}  map[string]string
// @Router       /v1/document-requests/{id} [get]
func (h *DocumentRequestHandler) Get(c echo.Context) error {
	user, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	dr, err := h.service.Get(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		return err
	}
	if user.Role == domain.RoleResident && dr.RequestedBy != user.ID {
		return domain.ErrDocumentRequestNotFound
	}
	return c.JSON(http.StatusOK, dr)
}

// List handles GET /v1/document-requests. Resident accounts see only their own
// requests; staff and above see the whole barangay.
//
// @Summary      List document requests in scope
// @Tags         document-requests
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Status filter"
// @Param        limit   query  int     false  "Page size"
// @Param        offset  query  int     false  "Page offset"
// @Success      200  {array}  domain.DocumentRequest
// @Router       /v1/document-requests [get]
func (h *DocumentRequestHandler) List(c echo.Context) error {
	user, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	offset, _ := strconv.ParseInt(c.QueryParam("offset"), 10, 64)

	query := ports.DocumentRequestQuery{
		Status: domain.RequestStatus(c.QueryParam("status")),
		Limit:  limit,
		Offset: offset,
	}
	if user.Role == domain.RoleResident {
		query.RequestedBy = user.ID
	}

	drs, err := h.service.List(c.Request().Context(), scope, query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, drs)
}

// Advance handles PATCH /v1/document-requests/:id/status — staff processing.
//
// @Summary      Advance a document request's status
// @Tags         document-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Request id"
// @Param        body  body      advanceDocumentRequest  true  "Next status"
// @Success      200   {object}  domain.DocumentRequest
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/document-requests/{id}/status [patch]
func (h *DocumentRequestHandler) Advance(c echo.Context) error {
	var req advanceDocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	user, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	dr, err := h.service.Advance(c.Request().Context(), scope, c.Param("id"), domain.RequestStatus(req.Status), req.Remarks, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dr)
}
