package pdfgen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Company block printed on every invoice
const (
	companyName    = "iFood Marketplace"
	companyAddress = "Av. Exemplo, 123 - Sao Paulo/SP"
	companyTaxID   = "CNPJ 12.345.678/0001-90"
)

type InvoiceLine struct {
	Title    string
	Quantity int
	Price    float64
	Amount   float64
}

type InvoiceData struct {
	InvoiceNumber string
	OrderNumber   string
	IssuedAt      time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	AddressLines  []string
	Items         []InvoiceLine
	Subtotal      float64
	Tax           float64
	Total         float64
}

// WriteInvoicePDF renders the invoice into mediaRoot/invoices and returns
// the path relative to mediaRoot.
func WriteInvoicePDF(mediaRoot string, data InvoiceData) (string, error) {
	dir := filepath.Join(mediaRoot, "invoices")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create invoice directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Company header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, companyName)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, companyAddress)
	pdf.Ln(4)
	pdf.Cell(0, 6, companyTaxID)
	pdf.Ln(10)

	// Invoice identification
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice %s", data.InvoiceNumber))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Order %s", data.OrderNumber))
	pdf.Ln(4)
	pdf.Cell(0, 5, fmt.Sprintf("Issued %s", data.IssuedAt.Format("02/01/2006 15:04:05")))
	pdf.Ln(8)

	// Customer block
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Billed to")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, data.CustomerName)
	pdf.Ln(4)
	pdf.Cell(0, 5, data.CustomerEmail)
	pdf.Ln(4)
	if data.CustomerPhone != "" {
		pdf.Cell(0, 5, data.CustomerPhone)
		pdf.Ln(4)
	}
	for _, line := range data.AddressLines {
		if line == "" {
			continue
		}
		pdf.Cell(0, 5, line)
		pdf.Ln(4)
	}
	pdf.Ln(6)

	// Line items table
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(95, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range data.Items {
		pdf.CellFormat(95, 7, item.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", item.Amount), "1", 1, "R", false, 0, "")
	}

	// Totals
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(150, 6, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", data.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(150, 6, "Tax", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", data.Tax), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(150, 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", data.Total), "", 1, "R", false, 0, "")

	fileName := fmt.Sprintf("invoice_%s.pdf", data.InvoiceNumber)
	fullPath := filepath.Join(dir, fileName)
	if err := pdf.OutputFileAndClose(fullPath); err != nil {
		return "", fmt.Errorf("write invoice PDF %s: %w", fileName, err)
	}

	return filepath.Join("invoices", fileName), nil
}
