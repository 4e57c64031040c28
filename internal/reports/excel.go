package reports

import (
	"fmt"
	"io"

	"stayline/internal/pkg/errs"
	"stayline/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const reservationSheet = "Reservations"

var reservationHeaders = []string{
	"ID", "Guest ID", "Room Type ID", "Unit", "Check-in", "Check-out",
	"Nights", "Adults", "Children", "Total", "Payment", "Status", "Created",
}

// WriteReservationsXLSX renders the hotel's reservations as a spreadsheet
// and streams it to w. One row per reservation, newest first as given.
func WriteReservationsXLSX(w io.Writer, hotelName string, reservations []*queries.ReservationView) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reservationSheet)
	if err != nil {
		return errs.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(reservationSheet, "A1", fmt.Sprintf("Reservations for %s", hotelName))
	lastCol, _ := excelize.ColumnNumberToName(len(reservationHeaders))
	_ = f.MergeCell(reservationSheet, "A1", lastCol+"1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(reservationSheet, "A1", "A1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, header := range reservationHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(reservationSheet, cell, header)
		_ = f.SetCellStyle(reservationSheet, cell, cell, headerStyle)
	}

	cancelledStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFC7CE"}, Pattern: 1},
	})

	for i, res := range reservations {
		row := i + 3
		values := []any{
			res.ID.String(),
			res.GuestID.String(),
			res.RoomTypeID.String(),
			res.Unit,
			res.CheckIn.Format("2006-01-02"),
			res.CheckOut.Format("2006-01-02"),
			res.Nights,
			res.Adults,
			res.Children,
			fmt.Sprintf("%.2f", float64(res.TotalCents)/100),
			res.PaymentStatus,
			res.Status,
			res.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(reservationSheet, cell, v)
		}
		if res.Status == "cancelled" {
			start, _ := excelize.CoordinatesToCellName(1, row)
			end, _ := excelize.CoordinatesToCellName(len(values), row)
			_ = f.SetCellStyle(reservationSheet, start, end, cancelledStyle)
		}
	}

	_ = f.SetColWidth(reservationSheet, "A", "C", 38)
	_ = f.SetColWidth(reservationSheet, "D", "M", 14)
	_ = f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return errs.Wrap(err, "failed to write workbook")
	}
	return nil
}
