package models

import "time"

// TransactionStatusCompleted is the status of every purchase recorded by the API.
const TransactionStatusCompleted = "completed"

// Transaction is a purchase of energy from a listing.
type Transaction struct {
	ID          int64      `json:"id"`
	BuyerID     int64      `json:"buyerId"`
	SellerID    int64      `json:"sellerId"`
	ListingID   int64      `json:"listingId"`
	KWh         float64    `json:"kwh"`
	TotalPrice  float64    `json:"totalPrice"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// TransactionRecord is a history row joined with its listing.
type TransactionRecord struct {
	ID           int64     `json:"id"`
	Date         time.Time `json:"date"`
	ListingID    int64     `json:"listingId,omitempty"`
	ListingTitle string    `json:"listingTitle,omitempty"`
	Location     string    `json:"location"`
	EnergyType   string    `json:"energyType"`
	KWh          float64   `json:"kwh"`
	TotalPrice   float64   `json:"totalPrice"`
}

// PurchaseSummary aggregates a consumer's purchases.
type PurchaseSummary struct {
	TotalKWh         float64 `json:"totalKwh"`
	TotalExpenditure float64 `json:"totalExpenditure"`
}

// SalesSummary aggregates a supplier's sales.
type SalesSummary struct {
	TotalKWh     float64 `json:"totalKwh"`
	TotalRevenue float64 `json:"totalRevenue"`
}
