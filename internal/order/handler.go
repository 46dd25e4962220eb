package order

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"pos-backend/internal/auth"
	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CustomerDetails struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Guests int    `json:"guests"`
}

type CreateRequest struct {
	Items           []ItemRequest    `json:"items"`
	Bills           models.OrderBill `json:"bills"`
	CustomerDetails *CustomerDetails `json:"customerDetails"`
	PaymentMethod   string           `json:"paymentMethod"`
	PaymentData     json.RawMessage  `json:"paymentData"`
	Table           *string          `json:"table"`
}

type UpdateRequest struct {
	OrderStatus models.OrderStatus `json:"orderStatus"`
}

// newOrderID builds the human readable identifier: "ORD-" plus a random
// 5 digit number. The result is never checked against existing orders, so
// a collision is possible. Kept as-is: at restaurant volume the odds are
// considered acceptable, and callers key on the numeric primary key anyway.
func newOrderID() string {
	return fmt.Sprintf("ORD-%d", 10000+rand.Intn(90000))
}

// POST /api/order
// Orders arriving here are already paid, so the status is set straight to
// served; there is no pending lifecycle on this path.
func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var body CreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Order must contain at least one item!")
		}

		customer := CustomerDetails{Name: "Walk-in", Phone: "0000000000", Guests: 1}
		if body.CustomerDetails != nil {
			customer = *body.CustomerDetails
		}

		items := make([]models.OrderItem, 0, len(body.Items))
		for _, it := range body.Items {
			items = append(items, models.OrderItem{
				Name:     it.Name,
				Category: it.Category,
				Price:    it.Price,
				Quantity: it.Quantity,
			})
		}

		o := models.Order{
			OrderID:       newOrderID(),
			CustomerName:  customer.Name,
			CustomerPhone: customer.Phone,
			Guests:        customer.Guests,
			Items:         items,
			Bills:         body.Bills,
			OrderStatus:   models.OrderStatusServed,
			PaymentMethod: body.PaymentMethod,
			PaymentData:   string(body.PaymentData),
			ServerID:      u.ID,
			TableNumber:   body.Table,
		}

		// items are written together with the order in one create
		if err := database.DB.Create(&o).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create order")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Order created!",
			"data":    o,
		})
	}
}

// GET /api/order
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := database.DB.
			Preload("Items").
			Preload("Server").
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list orders")
		}
		return c.JSON(fiber.Map{"success": true, "data": orders})
	}
}

// GET /api/order/:id
func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var o models.Order
		if err := database.DB.Preload("Items").Preload("Server").First(&o, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found!")
		}
		return c.JSON(fiber.Map{"success": true, "data": o})
	}
}

// PUT /api/order/:id — limited to the status transition.
func UpdateStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}
		if body.OrderStatus == "" {
			return fiber.NewError(fiber.StatusBadRequest, "orderStatus is required!")
		}

		var o models.Order
		if err := database.DB.Preload("Items").First(&o, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found!")
		}

		o.OrderStatus = body.OrderStatus
		if err := database.DB.Save(&o).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update order")
		}

		return c.JSON(fiber.Map{"success": true, "message": "Order updated", "data": o})
	}
}
