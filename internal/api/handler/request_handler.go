package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sevakendra/portal-api/internal/api/metrics"
	"github.com/sevakendra/portal-api/internal/core/domain"
	"github.com/sevakendra/portal-api/internal/core/ports"
)

// RequestHandler handles HTTP requests for the application lifecycle.
type RequestHandler struct {
	requests ports.RequestService
}

func NewRequestHandler(requests ports.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type submitRequestRequest struct {
	UserName       string `json:"userName"`
	UserPhone      string `json:"userPhone"`
	ServiceName    string `json:"serviceName"`
	ServiceID      string `json:"serviceId"`
	AadharNumber   string `json:"aadharNumber" validate:"omitempty,max=12"`
	Address        string `json:"address"`
	RegistrationNo string `json:"registrationNo"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type requestResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Request *domain.Request `json:"request"`
}

type requestListResponse struct {
	Success  bool              `json:"success"`
	Requests []*domain.Request `json:"requests"`
}

// Submit creates a new citizen application.
//
// @Summary      Submit an application
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      submitRequestRequest  true  "Application details"
// @Success      201   {object}  requestResponse
// @Failure      400   {object}  map[string]interface{}
// @Router       /api/requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.requests.Submit(c.Request().Context(), ports.SubmitRequestInput{
		UserName:       req.UserName,
		UserPhone:      req.UserPhone,
		ServiceName:    req.ServiceName,
		ServiceID:      req.ServiceID,
		AadharNumber:   req.AadharNumber,
		Address:        req.Address,
		RegistrationNo: req.RegistrationNo,
	})
	if err != nil {
		return err
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(created.ServiceName).Inc()
	return c.JSON(http.StatusCreated, requestResponse{
		Success: true,
		Message: "Application submitted successfully",
		Request: created,
	})
}

// List returns all applications, newest first.
//
// @Summary      List all applications
// @Tags         requests
// @Produce      json
// @Success      200  {object}  requestListResponse
// @Router       /api/requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.requests.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []*domain.Request{}
	}
	return c.JSON(http.StatusOK, requestListResponse{Success: true, Requests: requests})
}

// ListByPhone returns applications submitted with the given phone number.
//
// @Summary      List applications by phone
// @Tags         requests
// @Produce      json
// @Param        phone  path  string  true  "Applicant phone number"
// @Success      200  {object}  requestListResponse
// @Router       /api/requests/user/{phone} [get]
func (h *RequestHandler) ListByPhone(c echo.Context) error {
	requests, err := h.requests.ListByPhone(c.Request().Context(), c.Param("phone"))
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []*domain.Request{}
	}
	return c.JSON(http.StatusOK, requestListResponse{Success: true, Requests: requests})
}

// Track returns the single application carrying a registration number.
//
// @Summary      Track an application
// @Tags         requests
// @Produce      json
// @Param        registrationNo  path  string  true  "Registration number"
// @Success      200  {object}  requestResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/requests/track/{registrationNo} [get]
func (h *RequestHandler) Track(c echo.Context) error {
	request, err := h.requests.Track(c.Request().Context(), c.Param("registrationNo"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requestResponse{Success: true, Request: request})
}

// UpdateStatus overwrites the status of an application.
//
// @Summary      Update application status
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Request id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  requestResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /api/requests/{id}/status [put]
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}

	updated, err := h.requests.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.RequestStatusUpdatesTotal.WithLabelValues(string(updated.Status)).Inc()
	return c.JSON(http.StatusOK, requestResponse{
		Success: true,
		Message: "Status updated successfully",
		Request: updated,
	})
}
