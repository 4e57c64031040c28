package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "stayline/internal/handler/dto/request"
	resdto "stayline/internal/handler/dto/response"
	"stayline/internal/handler/middleware"
	"stayline/internal/usecase/commands"
	"stayline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	inventory    commands.InventoryCommands
	hotelQueries queries.HotelQueries
}

func NewRoomHandler(inventory commands.InventoryCommands, hotelQueries queries.HotelQueries) *RoomHandler {
	return &RoomHandler{
		inventory:    inventory,
		hotelQueries: hotelQueries,
	}
}

// @Summary Create room type
// @Description Create a room type with an initial unit pool
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomTypeRequest true "Room type request"
// @Success 201 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels/{id}/room-types [post]
func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.inventory.CreateRoomType(c.Request.Context(), commands.CreateRoomTypeRequest{
		HotelID:      hotelID,
		Category:     req.Category,
		NightlyCents: req.NightlyCents,
		MaxOccupancy: req.MaxOccupancy,
		Amenities:    req.Amenities,
		Images:       req.Images,
		Units:        req.Units,
	}, adminID)
	if err != nil {
		h.writeInventoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomTypeView(view))
}

// @Summary Add units
// @Description Add units to a room type's pool
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.UnitsRequest true "Unit expression"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /room-types/{id}/units [post]
func (h *RoomHandler) AddUnits(c *gin.Context) {
	h.editUnits(c, h.inventory.AddUnits)
}

// @Summary Remove units
// @Description Remove units from a room type's pool. Units with future
// confirmed reservations block the removal.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.UnitsRequest true "Unit expression"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /room-types/{id}/units [delete]
func (h *RoomHandler) RemoveUnits(c *gin.Context) {
	h.editUnits(c, h.inventory.RemoveUnits)
}

func (h *RoomHandler) editUnits(
	c *gin.Context,
	edit func(ctx context.Context, roomTypeID uuid.UUID, expr string, adminID uuid.UUID) (*queries.RoomTypeView, error),
) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type ID format",
		})
		return
	}

	var req reqdto.UnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := edit(c.Request.Context(), roomTypeID, req.Units, adminID)
	if err != nil {
		h.writeInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary List room types
// @Description List a hotel's room types
// @Tags rooms
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /hotels/{id}/room-types [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	views, err := h.hotelQueries.ListRoomTypes(c.Request.Context(), hotelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

// @Summary List units
// @Description List a room type's unit pool in ascending order
// @Tags rooms
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} resdto.UnitListResponse
// @Failure 404 {object} map[string]string
// @Router /room-types/{id}/units [get]
func (h *RoomHandler) ListUnits(c *gin.Context) {
	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type ID format",
		})
		return
	}

	units, err := h.hotelQueries.ListUnits(c.Request.Context(), roomTypeID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.UnitListResponse{RoomTypeID: roomTypeID, Units: units})
}

func (h *RoomHandler) writeInventoryError(c *gin.Context, err error) {
	var blocked *commands.BlockedUnitsError
	switch {
	case errors.Is(err, commands.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errors.Is(err, commands.ErrRoomTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room type not found",
		})
	case errors.Is(err, commands.ErrNotHotelAdmin):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Hotel is managed by another admin",
		})
	case errors.Is(err, commands.ErrCategoryExists):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Room type category already exists",
		})
	case errors.As(err, &blocked):
		c.JSON(http.StatusConflict, gin.H{
			"error":        "Units have future confirmed reservations",
			"blockedUnits": blocked.Units,
		})
	case errors.Is(err, commands.ErrInvalidUnitExpr),
		errors.Is(err, commands.ErrInvalidRoomType):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, commands.ErrAdmissionBusy):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Room type is busy, retry shortly",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
