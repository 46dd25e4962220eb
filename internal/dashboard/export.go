package dashboard

import (
	"fmt"
	"time"

	"pos-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/dashboard/export?timeframe=
// Streams an xlsx workbook with a summary sheet (totals, payment
// breakdown) and a top-items sheet, built from the same analytics queries
// the dashboard uses.
func ExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.DB
		now := time.Now()
		tf := ResolveTimeframe(c.Query("timeframe"), now)

		sales, err := SalesAggregate(db, tf)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
		}
		orders, err := OrdersAggregate(db, tf)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
		}
		payments, err := PaymentBreakdown(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
		}
		topItems, err := TopSellingItems(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
		}

		f := excelize.NewFile()
		defer f.Close()

		summary := "Summary"
		f.SetSheetName("Sheet1", summary)
		f.SetCellValue(summary, "A1", "Sales Report")
		f.SetCellValue(summary, "A2", "Generated")
		f.SetCellValue(summary, "B2", now.Format("2006-01-02 15:04"))
		f.SetCellValue(summary, "A3", "Timeframe")
		f.SetCellValue(summary, "B3", tf.Token)
		f.SetCellValue(summary, "A5", "Total sales")
		f.SetCellValue(summary, "B5", sales.Total)
		f.SetCellValue(summary, "A6", "Sales change (%)")
		f.SetCellValue(summary, "B6", sales.Change)
		f.SetCellValue(summary, "A7", "Order count")
		f.SetCellValue(summary, "B7", orders.Count)
		f.SetCellValue(summary, "A9", "Payment method")
		f.SetCellValue(summary, "B9", "Total")
		f.SetCellValue(summary, "A10", "Cash")
		f.SetCellValue(summary, "B10", payments.Cash)
		f.SetCellValue(summary, "A11", "POS 1")
		f.SetCellValue(summary, "B11", payments.POS1)
		f.SetCellValue(summary, "A12", "POS 2")
		f.SetCellValue(summary, "B12", payments.POS2)
		f.SetCellValue(summary, "A13", "Others")
		f.SetCellValue(summary, "B13", payments.Others)

		itemsSheet := "Top Items"
		if _, err := f.NewSheet(itemsSheet); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
		}
		f.SetCellValue(itemsSheet, "A1", "Item")
		f.SetCellValue(itemsSheet, "B1", "Quantity")
		f.SetCellValue(itemsSheet, "C1", "Revenue")
		for i, item := range topItems {
			row := i + 2
			f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row), item.Name)
			f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", row), item.Quantity)
			f.SetCellValue(itemsSheet, fmt.Sprintf("C%d", row), item.Revenue)
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build report")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="sales-report-%s.xlsx"`, now.Format("2006-01-02")))
		return c.Send(buf.Bytes())
	}
}
