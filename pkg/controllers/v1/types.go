package v1

import (
	"github.com/budget-tracker/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIIndex struct {
	Index *int `uri:"index" binding:"required,min=0" example:"3"` // Position of the category
}

type URICategory struct {
	Category string `uri:"category" binding:"required" example:"Food"` // Name of the category
}

type URIMonth struct {
	Month string `uri:"month" binding:"required" example:"2024-05"` // Year and month in YYYY-MM format
}

type URIYear struct {
	Year int `uri:"year" binding:"required,min=1" example:"2024"`
}

// AmountEditable is the body for contributions and payments.
type AmountEditable struct {
	Amount decimal.Decimal `json:"amount" example:"150"`
}
