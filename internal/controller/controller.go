package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/dto"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/payload"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/service"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/store"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.FormService
}

func CreateFormController(e *echo.Group, service service.FormService) {
	c := Controller{
		service: service,
	}

	e.POST("/forms", c.CreateForm)
	e.GET("/forms/:id", c.GetForm)
	e.DELETE("/forms/:id", c.DeleteForm)
	e.POST("/forms/:id/edits", c.ApplyEdit)
	e.GET("/forms/:id/payload", c.PreviewPayload)
	e.POST("/forms/:id/submit", c.SubmitForm)
}

func (c *Controller) CreateForm(e echo.Context) error {
	req := dto.CreateFormRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "CreateForm").Msg("")
		return writeError(e, fmt.Errorf("%w: %v", errs.ErrClient, err))
	}

	resp, err := c.service.CreateForm(e.Request().Context(), req)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponseWithStatus(e, http.StatusCreated, "form created", resp)
}

func (c *Controller) GetForm(e echo.Context) error {
	resp, err := c.service.GetForm(e.Request().Context(), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) DeleteForm(e echo.Context) error {
	if err := c.service.DeleteForm(e.Request().Context(), e.Param("id")); err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "form deleted", nil)
}

func (c *Controller) ApplyEdit(e echo.Context) error {
	req := dto.EditRequest{}
	if err := e.Bind(&req); err != nil {
		log.Error().Err(err).Str("component", "ApplyEdit").Msg("")
		return writeError(e, fmt.Errorf("%w: %v", errs.ErrClient, err))
	}

	resp, err := c.service.ApplyEdit(e.Request().Context(), e.Param("id"), req)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) PreviewPayload(e echo.Context) error {
	resp, err := c.service.PreviewPayload(e.Request().Context(), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) SubmitForm(e echo.Context) error {
	resp, err := c.service.SubmitForm(e.Request().Context(), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "product submitted", resp)
}

// writeError adds the detail of typed errors to the envelope.
func writeError(e echo.Context, err error) error {
	var verr *payload.ValidationError
	if errors.As(err, &verr) {
		return response.WriteErrorResponse(e, err, verr.Errors)
	}

	var ierr *store.IndexError
	if errors.As(err, &ierr) {
		return response.WriteErrorResponse(e, err, ierr)
	}

	if errs.GetErrorStatusCode(err) == errs.ErrStatusInternalServer {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Controller").Msg("")
	}

	return response.WriteErrorResponse(e, err, nil)
}
