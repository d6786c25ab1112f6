package handlers

import (
	"net/http"
	"strings"

	"github.com/famoussince/storefront/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// AdminExceptionHandler manages the forbidden word list.
type AdminExceptionHandler struct {
	queries *db.Queries
}

func NewAdminExceptionHandler(queries *db.Queries) *AdminExceptionHandler {
	return &AdminExceptionHandler{queries: queries}
}

func (h *AdminExceptionHandler) List(c echo.Context) error {
	words, err := h.queries.ListExceptions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list exceptions")
	}
	if words == nil {
		words = []db.Exception{}
	}
	return c.JSON(http.StatusOK, words)
}

type createExceptionRequest struct {
	Word string `json:"word"`
}

func (h *AdminExceptionHandler) Create(c echo.Context) error {
	var req createExceptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	word := strings.TrimSpace(req.Word)
	if word == "" || strings.ContainsAny(word, " \t") {
		return echo.NewHTTPError(http.StatusBadRequest, "word must be a single token")
	}

	exception, err := h.queries.CreateException(c.Request().Context(), db.CreateExceptionParams{
		ID:   ulid.Make().String(),
		Word: word,
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return echo.NewHTTPError(http.StatusConflict, "Word already listed")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create exception")
	}
	return c.JSON(http.StatusCreated, exception)
}

func (h *AdminExceptionHandler) Delete(c echo.Context) error {
	if err := h.queries.DeleteException(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete exception")
	}
	return c.NoContent(http.StatusNoContent)
}
