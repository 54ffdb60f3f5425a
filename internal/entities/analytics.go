package entities

import "time"

// SellerStats is a read-only aggregate for the seller dashboard. Revenue
// counts only Done orders; everything is recomputed from the order rows.
type SellerStats struct {
	SellerID     string              `json:"seller_id"`
	TotalRevenue int64               `json:"total_revenue"`
	StatusCounts map[OrderStatus]int `json:"status_counts"`
}

type MonthlyRevenue struct {
	Month   time.Time `json:"month"`
	Revenue int64     `json:"revenue"`
	Orders  int       `json:"orders"`
}
