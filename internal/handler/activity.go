package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nilepm/pm-suite/internal/model"
	"github.com/nilepm/pm-suite/internal/repository"
)

// CreateActivityForm handles POST /activity_form/add.
func (h *Handler) CreateActivityForm(c echo.Context) error {
	var body model.ActivityForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.ProjectID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "project_id is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	f, err := h.Activities.CreateForm(ctx, body)
	if err != nil {
		return repoError(c, err, "activity form")
	}
	return c.JSON(http.StatusCreated, f)
}

// ListActivityForms handles GET /activity_form.
func (h *Handler) ListActivityForms(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	fs, err := h.Activities.ListForms(ctx)
	if err != nil {
		return repoError(c, err, "activity form")
	}
	return c.JSON(http.StatusOK, fs)
}

// UpdateActivityForm handles PATCH/PUT /activity_form/:id/edit.
func (h *Handler) UpdateActivityForm(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	fields := repository.Fields{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	f, err := h.Activities.UpdateForm(ctx, id, fields)
	if err != nil {
		return repoError(c, err, "activity form")
	}
	return c.JSON(http.StatusOK, f)
}

// DeleteActivityForm handles DELETE /activity_form/:id/delete.
func (h *Handler) DeleteActivityForm(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Activities.DeleteForm(ctx, id); err != nil {
		return repoError(c, err, "activity form")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "activity form deleted"})
}

// CreateActivityClosure handles POST /activity_closure/add.
func (h *Handler) CreateActivityClosure(c echo.Context) error {
	var body model.ActivityClosure
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.ProjectID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "project_id is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	cl, err := h.Activities.CreateClosure(ctx, body)
	if err != nil {
		return repoError(c, err, "activity closure")
	}
	return c.JSON(http.StatusCreated, cl)
}

// ListActivityClosures handles GET /activity_closure.
func (h *Handler) ListActivityClosures(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	cls, err := h.Activities.ListClosures(ctx)
	if err != nil {
		return repoError(c, err, "activity closure")
	}
	return c.JSON(http.StatusOK, cls)
}

// UpdateActivityClosure handles PATCH/PUT /activity_closure/:id/edit.
func (h *Handler) UpdateActivityClosure(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	fields := repository.Fields{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	cl, err := h.Activities.UpdateClosure(ctx, id, fields)
	if err != nil {
		return repoError(c, err, "activity closure")
	}
	return c.JSON(http.StatusOK, cl)
}

// DeleteActivityClosure handles DELETE /activity_closure/:id/delete.
func (h *Handler) DeleteActivityClosure(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Activities.DeleteClosure(ctx, id); err != nil {
		return repoError(c, err, "activity closure")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "activity closure deleted"})
}
