package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sevakendra/portal-api/internal/core/domain"
	"github.com/sevakendra/portal-api/internal/core/ports"
)

// ServiceHandler handles HTTP requests for the service catalog.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type createServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// updateServiceRequest uses pointers so absent fields keep their stored
// value instead of being blanked.
type updateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
}

type serviceListResponse struct {
	Success  bool              `json:"success"`
	Services []*domain.Service `json:"services"`
}

type serviceResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Service *domain.Service `json:"service"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// List returns all active catalog entries.
//
// @Summary      List active services
// @Tags         services
// @Produce      json
// @Success      200  {object}  serviceListResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.catalog.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	if services == nil {
		services = []*domain.Service{}
	}
	return c.JSON(http.StatusOK, serviceListResponse{Success: true, Services: services})
}

// Create adds a new catalog entry.
//
// @Summary      Add a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  serviceResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Router       /api/services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}

	created, err := h.catalog.Create(c.Request().Context(), ports.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, serviceResponse{
		Success: true,
		Message: "Service added successfully",
		Service: created,
	})
}

// Update overwrites the mutable fields of a catalog entry.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to update"
// @Success      200   {object}  serviceResponse
// @Failure      404   {object}  map[string]interface{}
// @Router       /api/services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}

	updated, err := h.catalog.Update(c.Request().Context(), c.Param("id"), ports.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, serviceResponse{
		Success: true,
		Message: "Service updated successfully",
		Service: updated,
	})
}

// Delete soft-deactivates a catalog entry.
//
// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Service id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.catalog.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Service deleted successfully",
	})
}
