package entities

import (
	"time"

	"ivms/internal/db"
)

// CourierRequest mirrors the courier form's lowercase field names.
type CourierRequest struct {
	Name            string `json:"name" validate:"required"`
	CourierName     string `json:"couriername" validate:"required"`
	CourierID       string `json:"courierid" validate:"required"`
	Phone           string `json:"phone" validate:"required,len=10,numeric"`
	PersonToDeliver string `json:"persontodeliver" validate:"required"`
}

type CourierResponse struct {
	ID              string    `json:"id"`
	SlNumber        int64     `json:"slnumber"`
	Name            string    `json:"name"`
	CourierName     string    `json:"couriername"`
	CourierID       string    `json:"courierid"`
	Phone           string    `json:"phone"`
	PersonToDeliver string    `json:"persontodeliver"`
	DateTime        time.Time `json:"datetime"`
}

func CourierResponseFrom(c *db.Courier) CourierResponse {
	return CourierResponse{
		ID:              c.ID,
		SlNumber:        c.Serial,
		Name:            c.VisitorName,
		CourierName:     c.CourierName,
		CourierID:       c.CourierID,
		Phone:           c.Phone,
		PersonToDeliver: c.PersonToDeliver,
		DateTime:        c.CreatedAt,
	}
}
