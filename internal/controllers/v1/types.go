package v1

import (
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	ez_uuid "github.com/rpmartinrodriguez/Reporte-Financiero/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URIDate struct {
	Date types.Date `uri:"date" example:"2024-03-20"` // Date in YYYY-MM-DD format
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// DateBody is the optional body of workflow calls that only take a date.
type DateBody struct {
	Date types.Date `json:"date" example:"2024-03-20"` // Date of the operation. Defaults to today or the date stored on the record
}
