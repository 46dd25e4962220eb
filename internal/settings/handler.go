package settings

import (
	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UpdateRequest struct {
	BusinessName    *string `json:"businessName"`
	BusinessLogo    *string `json:"businessLogo"`
	BusinessAddress *string `json:"businessAddress"`
	BusinessPhone   *string `json:"businessPhone"`
	BusinessEmail   *string `json:"businessEmail"`

	VATRate               *float64 `json:"vatRate"`
	IncludeVATInPrices    *bool    `json:"includeVatInPrices"`
	ShowVATOnReceipt      *bool    `json:"showVatOnReceipt"`
	TaxRegistrationNumber *string  `json:"taxRegistrationNumber"`

	ReceiptPrinter         *string `json:"receiptPrinter"`
	KitchenPrinter         *string `json:"kitchenPrinter"`
	AutoPrintKitchenOrders *bool   `json:"autoPrintKitchenOrders"`
	PrintCustomerReceipt   *bool   `json:"printCustomerReceipt"`
}

// loadOrInit returns the singleton settings row, creating it with defaults
// on first read.
func loadOrInit(db *gorm.DB) (*models.Settings, error) {
	var s models.Settings
	err := db.First(&s).Error
	if err == nil {
		return &s, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	s = models.DefaultSettings()
	if err := db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GET /api/settings
func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := loadOrInit(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}
		return c.JSON(fiber.Map{"success": true, "data": s})
	}
}

// PUT /api/settings — strict merge, only fields present in the payload.
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := loadOrInit(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load settings")
		}

		var body UpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		if body.BusinessName != nil {
			s.BusinessName = *body.BusinessName
		}
		if body.BusinessLogo != nil {
			s.BusinessLogo = *body.BusinessLogo
		}
		if body.BusinessAddress != nil {
			s.BusinessAddress = *body.BusinessAddress
		}
		if body.BusinessPhone != nil {
			s.BusinessPhone = *body.BusinessPhone
		}
		if body.BusinessEmail != nil {
			s.BusinessEmail = *body.BusinessEmail
		}
		if body.VATRate != nil {
			if *body.VATRate < 0 || *body.VATRate > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "VAT rate must be between 0 and 100!")
			}
			s.VATRate = *body.VATRate
		}
		if body.IncludeVATInPrices != nil {
			s.IncludeVATInPrices = *body.IncludeVATInPrices
		}
		if body.ShowVATOnReceipt != nil {
			s.ShowVATOnReceipt = *body.ShowVATOnReceipt
		}
		if body.TaxRegistrationNumber != nil {
			s.TaxRegistrationNumber = *body.TaxRegistrationNumber
		}
		if body.ReceiptPrinter != nil {
			s.ReceiptPrinter = *body.ReceiptPrinter
		}
		if body.KitchenPrinter != nil {
			s.KitchenPrinter = *body.KitchenPrinter
		}
		if body.AutoPrintKitchenOrders != nil {
			s.AutoPrintKitchenOrders = *body.AutoPrintKitchenOrders
		}
		if body.PrintCustomerReceipt != nil {
			s.PrintCustomerReceipt = *body.PrintCustomerReceipt
		}

		if err := database.DB.Save(s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update settings")
		}

		return c.JSON(fiber.Map{"success": true, "message": "Settings updated successfully!", "data": s})
	}
}
