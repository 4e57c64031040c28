package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"stayline/internal/handler/middleware"
	"stayline/internal/reports"
	"stayline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	hotelQueries       queries.HotelQueries
	reservationQueries queries.ReservationQueries
}

func NewReportHandler(hotelQueries queries.HotelQueries, reservationQueries queries.ReservationQueries) *ReportHandler {
	return &ReportHandler{
		hotelQueries:       hotelQueries,
		reservationQueries: reservationQueries,
	}
}

// @Summary Export reservations
// @Description Download a hotel's reservations as an xlsx workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id}/reservations/export [get]
func (h *ReportHandler) ExportReservations(c *gin.Context) {
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

	hotel, err := h.hotelQueries.GetHotel(c.Request.Context(), hotelID)
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
	if hotel.AdminID != adminID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Hotel is managed by another admin",
		})
		return
	}

	views, err := h.reservationQueries.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteReservationsXLSX(&buf, hotel.Name, views); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	fileName := fmt.Sprintf("reservations_%s.xlsx", hotelID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
