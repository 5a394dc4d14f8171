package response

import (
	"time"

	"food-marketplace/internal/data/entity"
)

type InvoiceResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	InvoiceNumber string    `json:"invoice_number"`
	PDFFile       *string   `json:"pdf_file,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func InvoiceToResponse(invoice *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            invoice.ID.String(),
		OrderID:       invoice.OrderID.String(),
		InvoiceNumber: invoice.InvoiceNumber,
		PDFFile:       invoice.PDFFile,
		CreatedAt:     invoice.CreatedAt,
	}
}
