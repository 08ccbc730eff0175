package model

import "github.com/shopspring/decimal"

// Catalog entities are owned by the catalog service; this core only reads
// them (product activity/price snapshots, warehouse and supplier existence).

type Product struct {
	ID     uint64          `db:"id" json:"id"`
	SKU    string          `db:"sku" json:"sku"`
	Name   string          `db:"name" json:"name"`
	Price  decimal.Decimal `db:"price" json:"price"`
	Active bool            `db:"active" json:"active"`
}

type Warehouse struct {
	ID   uint64 `db:"id" json:"id"`
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

type Supplier struct {
	ID    uint64 `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}
