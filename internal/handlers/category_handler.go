package handlers

import (
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryResponse is one selectable category
type CategoryResponse struct {
	Value string      `json:"value"`
	Label string      `json:"label"`
	Emoji string      `json:"emoji"`
	Kind  models.Kind `json:"kind"`
}

type CategoryHandler struct {
	categories services.CategoryServiceInterface
}

func NewCategoryHandler(categories services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List returns the registry of one kind, or both when kind is omitted
// @Summary List categories
// @Tags Categories
// @Produce json
// @Param kind query string false "Collection" Enums(expense, earning)
// @Success 200 {object} SuccessResponse{data=[]CategoryResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006"
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	kinds := models.AllKinds()
	if raw := c.QueryParam("kind"); raw != "" {
		kind, err := models.ParseKind(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidKind)
		}
		kinds = []models.Kind{kind}
	}

	var data []CategoryResponse
	for _, kind := range kinds {
		for _, entry := range h.categories.Categories(kind) {
			data = append(data, CategoryResponse{
				Value: entry.Code,
				Label: entry.Label,
				Emoji: h.categories.EmojiFor(entry.Code, kind),
				Kind:  kind,
			})
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: data})
}
