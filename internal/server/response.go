package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
)

type envelope struct {
	Data interface{} `json:"data"`
}

type pagedEnvelope struct {
	Data     interface{} `json:"data"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, envelope{Data: data})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, envelope{Data: data})
}

func Paged(c echo.Context, data interface{}, total, page, pageSize int) error {
	return c.JSON(http.StatusOK, pagedEnvelope{Data: data, Total: total, Page: page, PageSize: pageSize})
}

// Fail maps the error taxonomy onto HTTP statuses. Unclassified errors never
// leak their internals to the client.
func Fail(c echo.Context, err error) error {
	kind := apperrors.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindConflict:
		status = http.StatusConflict
	case apperrors.KindTransport:
		status = http.StatusBadGateway
	}

	return c.JSON(status, errorBody{Kind: kind.String(), Message: apperrors.Message(err)})
}

func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, errorBody{Kind: "not_found", Message: msg})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorBody{Kind: "validation", Message: msg})
}

func Unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, errorBody{Kind: "unauthorized", Message: msg})
}
