package medication

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinrec/clinrec/internal/platform/auth"
	"github.com/clinrec/clinrec/internal/platform/errs"
	"github.com/clinrec/clinrec/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/medications", h.ListCatalog)
	api.GET("/medications/:id", h.Get)
	api.GET("/medications/dispensed", h.ListDispensed)

	write := api.Group("", auth.RequireRole("admin", "pharmacist"))
	write.POST("/medications", h.Create)
}

func (h *Handler) ListCatalog(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.ListCatalog(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errs.HTTP(err)
	}
	page := pagination.Window(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	m, err := h.svc.GetMedication(c.Request().Context(), id)
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) Create(c echo.Context) error {
	var m Medication
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.CreateMedication(c.Request().Context(), &m)
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"med_id": id})
}

func (h *Handler) ListDispensed(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.ListDispensed(c.Request().Context())
	if err != nil {
		return errs.HTTP(err)
	}
	page := pagination.Window(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), pg.Limit, pg.Offset))
}
