package entity

import "github.com/google/uuid"

// Invoice is 1:1 with a paid order. PDFFile is relative to the media
// root once the document has been rendered.
type Invoice struct {
	BaseSimple
	OrderID       uuid.UUID `db:"order_id"`
	InvoiceNumber string    `db:"invoice_number"`
	PDFFile       *string   `db:"pdf_file"`
}
