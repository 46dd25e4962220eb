package dashboard

import (
	"time"

	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var totalUsers, totalMenu int64
		if err := database.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load dashboard stats")
		}
		if err := database.DB.Model(&models.Dish{}).Count(&totalMenu).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load dashboard stats")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"totalUsers": totalUsers,
				"totalMenu":  totalMenu,
			},
		})
	}
}

// GET /api/dashboard/analytics?salesTimeframe=&ordersTimeframe=
// Every aggregate is recomputed from scratch on each request; if any query
// fails the whole response fails.
func AnalyticsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.DB
		now := time.Now()

		sales, err := SalesAggregate(db, ResolveTimeframe(c.Query("salesTimeframe"), now))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load analytics")
		}

		orders, err := OrdersAggregate(db, ResolveTimeframe(c.Query("ordersTimeframe"), now))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load analytics")
		}

		weekly, err := WeeklySalesSeries(db, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load analytics")
		}

		hourly, err := HourlyTraffic(db, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load analytics")
		}

		categories, err := CategoryPerformanceStats(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load analytics")
		}

		topItems, err := TopSellingItems(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load analytics")
		}

		payments, err := PaymentBreakdown(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load analytics")
		}

		unavailable, err := UnavailableDishes(db)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load analytics")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"sales":               sales,
				"salesChange":         sales.Change,
				"orders":              orders,
				"ordersChange":        orders.Change,
				"weeklySales":         weekly,
				"hourlyTraffic":       hourly,
				"categoryPerformance": categories,
				"topSellingItems":     topItems,
				"paymentMethods":      payments,
				"unavailableItems":    unavailable,
			},
		})
	}
}
