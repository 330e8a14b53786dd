package allergy

import (
	"net/http"

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
	api.GET("/patient-allergies", h.ListPatientAllergies)
	api.GET("/allergy-conflicts", h.ListConflicts)

	admin := api.Group("", auth.RequireRole("admin"))
	admin.POST("/allergy-conflicts/seed", h.SeedConflicts)
}

func (h *Handler) ListPatientAllergies(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.ListPatientAllergies(c.Request().Context())
	if err != nil {
		return errs.HTTP(err)
	}
	page := pagination.Window(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), pg.Limit, pg.Offset))
}

func (h *Handler) ListConflicts(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.ListConflicts(c.Request().Context())
	if err != nil {
		return errs.HTTP(err)
	}
	page := pagination.Window(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), pg.Limit, pg.Offset))
}

func (h *Handler) SeedConflicts(c echo.Context) error {
	inserted, err := h.svc.SeedConflicts(c.Request().Context())
	if err != nil {
		return errs.HTTP(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"inserted": inserted})
}
