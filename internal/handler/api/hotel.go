package api

import (
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

type HotelHandler struct {
	hotelCommands commands.HotelCommands
	hotelQueries  queries.HotelQueries
}

func NewHotelHandler(hotelCommands commands.HotelCommands, hotelQueries queries.HotelQueries) *HotelHandler {
	return &HotelHandler{
		hotelCommands: hotelCommands,
		hotelQueries:  hotelQueries,
	}
}

// @Summary Create hotel
// @Description Create a hotel managed by the authenticated admin
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel request"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /hotels [post]
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.hotelCommands.CreateHotel(c.Request.Context(), commands.CreateHotelRequest{
		Name:        req.Name,
		City:        req.City,
		Description: req.Description,
		Address:     req.Address,
		Amenities:   req.Amenities,
		Images:      req.Images,
	}, adminID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidHotel):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotelView(view))
}

// @Summary Update hotel
// @Description Partially update hotel metadata
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Update request"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [patch]
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
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

	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.hotelCommands.UpdateHotel(c.Request.Context(), hotelID, commands.UpdateHotelRequest{
		Name:         req.Name,
		City:         req.City,
		Description:  req.Description,
		Address:      req.Address,
		Amenities:    req.Amenities,
		AddImages:    req.AddImages,
		RemoveImages: req.RemoveImages,
	}, adminID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, commands.ErrNotHotelAdmin):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Hotel is managed by another admin",
			})
		case errors.Is(err, commands.ErrInvalidHotel):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary List hotels
// @Description List hotels, optionally filtered by city
// @Tags hotels
// @Produce json
// @Param city query string false "City filter"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	views, err := h.hotelQueries.ListHotels(c.Request.Context(), c.Query("city"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Get hotel
// @Description Get hotel by ID
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	view, err := h.hotelQueries.GetHotel(c.Request.Context(), hotelID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}
