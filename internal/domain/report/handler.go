package report

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinrec/clinrec/internal/platform/errs"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reports/rx-counts", h.ProviderRxCounts)
	api.GET("/reports/no-rx-for-dx", h.UntreatedDiagnoses)
	api.GET("/reports/patient-rx-counts", h.PatientRxCounts)
}

func (h *Handler) ProviderRxCounts(c echo.Context) error {
	rows, err := h.svc.ProviderRxCounts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"q": c.QueryParam("q"), "rows": rows})
}

func (h *Handler) UntreatedDiagnoses(c echo.Context) error {
	rows, err := h.svc.UntreatedDiagnoses(c.Request().Context(), c.QueryParam("dx"))
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"dx": c.QueryParam("dx"), "rows": rows})
}

func (h *Handler) PatientRxCounts(c echo.Context) error {
	min, err := strconv.Atoi(c.QueryParam("min"))
	if err != nil {
		min = 1
	}
	rows, err := h.svc.PatientRxCounts(c.Request().Context(), min)
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"min": min, "rows": rows})
}
