package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bms-ph/records-system/internal/core/ports"
)

type AnnouncementHandler struct {
	service ports.AnnouncementService
}

func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

type announcementRequest struct {
	BarangayID string `json:"barangay_id"`
	Title      string `json:"title" validate:"required"`
	Body       string `json:"body" validate:"required"`
	Pinned     bool   `json:"pinned"`
}

// Create handles POST /v1/announcements.
//
// @Summary      Post an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      announcementRequest  true  "Announcement"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req announcementRequest
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

	ann, err := h.service.Create(c.Request().Context(), scope, user.ID, ports.AnnouncementInput{
		BarangayID: req.BarangayID,
		Title:      req.Title,
		Body:       req.Body,
		Pinned:     req.Pinned,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ann)
}

// Get handles GET /v1/announcements/:id.
//
// @Summary      Get an announcement
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Announcement id"
// @Success      200  {object}  domain.Announcement
// @Failure      404  {object}  map[string]string
// @Router       /v1/announcements/{id} [get]
func (h *AnnouncementHandler) Get(c echo.Context) error {
	_, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	ann, err := h.service.Get(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ann)
}

// List handles GET /v1/announcements.
//
// @Summary      List announcements in scope
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {array}  domain.Announcement
// @Router       /v1/announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	_, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	offset, _ := strconv.ParseInt(c.QueryParam("offset"), 10, 64)

	anns, err := h.service.List(c.Request().Context(), scope, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, anns)
}

// Delete handles DELETE /v1/announcements/:id.
//
// @Summary      Remove an announcement
// @Tags         announcements
// @Security     BearerAuth
// @Param        id  path  string  true  "Announcement id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Router       /v1/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	_, scope, err := ctxAuth(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), scope, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
