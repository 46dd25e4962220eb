package models

import "time"

// Settings is a singleton row, created lazily with defaults on first read.
type Settings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Business information
	BusinessName    string `gorm:"size:100;not null" json:"businessName"`
	BusinessLogo    string `gorm:"size:255" json:"businessLogo"`
	BusinessAddress string `gorm:"size:255" json:"businessAddress"`
	BusinessPhone   string `gorm:"size:20" json:"businessPhone"`
	BusinessEmail   string `gorm:"size:100" json:"businessEmail"`

	// Tax / VAT
	VATRate               float64 `gorm:"not null" json:"vatRate"`
	IncludeVATInPrices    bool    `json:"includeVatInPrices"`
	ShowVATOnReceipt      bool    `json:"showVatOnReceipt"`
	TaxRegistrationNumber string  `gorm:"size:50" json:"taxRegistrationNumber"`

	// Printers
	ReceiptPrinter         string `gorm:"size:100" json:"receiptPrinter"`
	KitchenPrinter         string `gorm:"size:100" json:"kitchenPrinter"`
	AutoPrintKitchenOrders bool   `json:"autoPrintKitchenOrders"`
	PrintCustomerReceipt   bool   `json:"printCustomerReceipt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings are the values written on first read.
func DefaultSettings() Settings {
	return Settings{
		BusinessName:           "Restaurant Name",
		VATRate:                7.5,
		IncludeVATInPrices:     true,
		ShowVATOnReceipt:       true,
		ReceiptPrinter:         "Epson TM-T88V",
		KitchenPrinter:         "Epson TM-T88V (Kitchen)",
		AutoPrintKitchenOrders: true,
		PrintCustomerReceipt:   true,
	}
}
