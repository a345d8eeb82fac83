package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"food-api/models"
	"food-api/services"
)

type createFoodRequest struct {
	ItemID   string `json:"itemId" validate:"required,max=6"`
	ItemName string `json:"itemName" validate:"required,max=25"`
	ItemUnit string `json:"itemUnit" validate:"required,max=5"`
}

func (r *createFoodRequest) sanitize() {
	r.ItemID = strings.TrimSpace(r.ItemID)
	r.ItemName = strings.TrimSpace(r.ItemName)
	r.ItemUnit = strings.TrimSpace(r.ItemUnit)
}

type updateFoodRequest struct {
	ItemName *string `json:"itemName" validate:"omitempty,max=25"`
	ItemUnit *string `json:"itemUnit" validate:"omitempty,max=5"`
}

func (r *updateFoodRequest) sanitize() {
	if r.ItemName != nil {
		v := strings.TrimSpace(*r.ItemName)
		r.ItemName = &v
	}
	if r.ItemUnit != nil {
		v := strings.TrimSpace(*r.ItemUnit)
		r.ItemUnit = &v
	}
}

type putFoodRequest struct {
	ItemName string `json:"itemName" validate:"required,max=25"`
	ItemUnit string `json:"itemUnit" validate:"required,max=5"`
}

func (r *putFoodRequest) sanitize() {
	r.ItemName = strings.TrimSpace(r.ItemName)
	r.ItemUnit = strings.TrimSpace(r.ItemUnit)
}

type foodKey struct {
	ItemID string `json:"itemId" validate:"required,max=6"`
}

type foodListResponse struct {
	FoodList []string `json:"foodList"`
}

// CreateFood inserts one food item.
// @Summary Create a food item
// @Tags foods
// @Accept json
// @Produce json
// @Param request body createFoodRequest true "Food item"
// @Success 201 {object} messageResponse
// @Failure 400 {object} validationResponse "Field violations"
// @Failure 500 {object} errorResponse
// @Router /foods [post]
func (h *Handler) CreateFood(c *gin.Context) {
	var req createFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	req.sanitize()
	if errs := checkStruct(&req); errs != nil {
		validationFailed(c, errs)
		return
	}

	food := models.Food{ItemID: req.ItemID, ItemName: req.ItemName, ItemUnit: req.ItemUnit}
	if err := services.CreateFood(c.Request.Context(), conn(c), food); err != nil {
		h.serverError(c, "create food", err)
		return
	}
	c.JSON(http.StatusCreated, messageResponse{Message: "food item created"})
}

// UpdateFood partially updates a food item by id.
// @Summary Update a food item
// @Description Updates only the supplied fields. At least one of itemName
// @Description and itemUnit must be present.
// @Tags foods
// @Accept json
// @Produce json
// @Param itemId path string true "Food item id"
// @Param request body updateFoodRequest true "Fields to update"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse "No updatable field or field violations"
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /foods/{itemId} [patch]
func (h *Handler) UpdateFood(c *gin.Context) {
	key := foodKey{ItemID: strings.TrimSpace(c.Param("itemId"))}
	if errs := checkStruct(&key); errs != nil {
		validationFailed(c, errs)
		return
	}

	var req updateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	req.sanitize()
	if errs := checkStruct(&req); errs != nil {
		validationFailed(c, errs)
		return
	}

	err := services.UpdateFood(c.Request.Context(), conn(c), key.ItemID, req.ItemName, req.ItemUnit)
	switch {
	case errors.Is(err, services.ErrNoFields):
		badRequest(c, "at least one of itemName or itemUnit must be supplied")
	case errors.Is(err, services.ErrNotFound):
		notFound(c, "food item not found")
	case err != nil:
		h.serverError(c, "update food", err)
	default:
		c.JSON(http.StatusOK, messageResponse{Message: "food item updated"})
	}
}

// UpsertFood creates the food item or replaces the one with the same id.
// @Summary Create or replace a food item
// @Tags foods
// @Accept json
// @Produce json
// @Param itemId path string true "Food item id"
// @Param request body putFoodRequest true "Food item fields"
// @Success 200 {object} messageResponse "Existing item updated"
// @Success 201 {object} messageResponse "New item created"
// @Failure 400 {object} validationResponse
// @Failure 500 {object} errorResponse
// @Router /foods/{itemId} [put]
func (h *Handler) UpsertFood(c *gin.Context) {
	key := foodKey{ItemID: strings.TrimSpace(c.Param("itemId"))}
	if errs := checkStruct(&key); errs != nil {
		validationFailed(c, errs)
		return
	}

	var req putFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	req.sanitize()
	if errs := checkStruct(&req); errs != nil {
		validationFailed(c, errs)
		return
	}

	food := models.Food{ItemID: key.ItemID, ItemName: req.ItemName, ItemUnit: req.ItemUnit}
	created, err := services.UpsertFood(c.Request.Context(), conn(c), food)
	if err != nil {
		h.serverError(c, "upsert food", err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, messageResponse{Message: "food item created"})
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "food item updated"})
}

// ListFoods returns the names of all food items.
// @Summary List food items
// @Tags foods
// @Produce json
// @Success 200 {object} foodListResponse
// @Failure 500 {object} errorResponse
// @Router /foods [get]
func (h *Handler) ListFoods(c *gin.Context) {
	names, err := services.ListFoodNames(c.Request.Context(), conn(c))
	if err != nil {
		h.serverError(c, "list foods", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, foodListResponse{FoodList: names})
}
