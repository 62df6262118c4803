package appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medlink/medlink/internal/platform/auth"
	"github.com/medlink/medlink/pkg/pagination"
)

type Handler struct {
	svc      *Service
	validate *validator.Validate
}

func NewHandler(svc *Service, validate *validator.Validate) *Handler {
	return &Handler{svc: svc, validate: validate}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("doctor"))

	g.GET("/appointments", h.List)
	g.GET("/appointments/active", h.Active)
	g.GET("/appointments/upcoming", h.Upcoming)
	g.GET("/appointments/:id", h.Get)
	g.POST("/appointments", h.Create)
	g.PATCH("/appointments/:id/link", h.UpdateLink)
	g.DELETE("/appointments/:id", h.Delete)

	g.GET("/doctors/:id/appointments", h.ListByDoctor)
	g.GET("/patients/:id/appointments", h.ListByPatient)
}

// httpError maps the package sentinels onto HTTP statuses.
func httpError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidRequest):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

type createRequest struct {
	Link           string    `json:"link" validate:"required,url"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required"`
	LocalDoctorID  uuid.UUID `json:"local_doctor_id" validate:"required"`
	RemoteDoctorID uuid.UUID `json:"remote_doctor_id" validate:"required"`
	PatientID      uuid.UUID `json:"patient_id" validate:"required"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a := &Appointment{
		Link:           req.Link,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		LocalDoctorID:  req.LocalDoctorID,
		RemoteDoctorID: req.RemoteDoctorID,
		PatientID:      req.PatientID,
	}
	if err := h.svc.Create(c.Request().Context(), a); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type updateLinkRequest struct {
	Link string `json:"link" validate:"required,url"`
}

func (h *Handler) UpdateLink(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req updateLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateLink(c.Request().Context(), id, req.Link); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles the role- and filter-scoped listing. doctor_id and filter
// are required query parameters; show_all only takes effect for local
// doctors.
func (h *Handler) List(c echo.Context) error {
	doctorID, err := uuid.Parse(c.QueryParam("doctor_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
	}
	f := Filter(c.QueryParam("filter"))
	if !f.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "filter must be today, future or past")
	}
	showAll := c.QueryParam("show_all") == "true"
	pg := pagination.FromContext(c)

	items, total, err := h.svc.List(c.Request().Context(), doctorID, f, pg.Offset, pg.Limit, showAll)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Active(c echo.Context) error {
	doctorID, err := uuid.Parse(c.QueryParam("doctor_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
	}
	a, err := h.svc.ActiveForDoctor(c.Request().Context(), doctorID)
	if err != nil {
		return httpError(err)
	}
	if a == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Upcoming(c echo.Context) error {
	doctorID, err := uuid.Parse(c.QueryParam("doctor_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListFutureForDoctor(c.Request().Context(), doctorID, pg.Limit, pg.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListByDoctor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.ListByDoctor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByPatient(c.Request().Context(), id, pg.Limit, pg.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
