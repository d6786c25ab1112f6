package handlers

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"

	"github.com/famoussince/storefront/storage/db"
	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
)

type AdminOrderHandler struct {
	queries *db.Queries
	baseURL string
}

func NewAdminOrderHandler(queries *db.Queries, baseURL string) *AdminOrderHandler {
	return &AdminOrderHandler{queries: queries, baseURL: baseURL}
}

func (h *AdminOrderHandler) List(c echo.Context) error {
	orders, err := h.queries.ListOrders(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list orders")
	}
	if orders == nil {
		orders = []db.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *AdminOrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.queries.GetOrder(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	}
	items, err := h.queries.ListOrderItems(ctx, order.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list order items")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"order": order,
		"items": items,
	})
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

var orderStatuses = map[string]bool{
	"pending":   true,
	"printing":  true,
	"shipped":   true,
	"delivered": true,
	"canceled":  true,
}

func (h *AdminOrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if !orderStatuses[req.Status] {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown status")
	}

	if err := h.queries.UpdateOrderStatus(c.Request().Context(), db.UpdateOrderStatusParams{
		Status: req.Status,
		ID:     c.Param("id"),
	}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update order")
	}
	return c.NoContent(http.StatusNoContent)
}

// PackingSlip renders a printable PDF for the order with a QR code
// linking back to its admin page.
func (h *AdminOrderHandler) PackingSlip(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.queries.GetOrder(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	}
	items, err := h.queries.ListOrderItems(ctx, order.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list order items")
	}

	pdfBytes, err := renderPackingSlip(order, items, h.baseURL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render packing slip")
	}

	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=packing-slip-%s.pdf", order.ID))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}

func renderPackingSlip(order db.Order, items []db.OrderItem, baseURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Famous Since")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Order %s", order.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, order.CustomerName)
	pdf.Ln(6)
	pdf.Cell(0, 6, order.ShippingAddressLine1)
	pdf.Ln(6)
	if order.ShippingAddressLine2.Valid {
		pdf.Cell(0, 6, order.ShippingAddressLine2.String)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("%s, %s %s", order.ShippingCity, order.ShippingState, order.ShippingPostalCode))
	pdf.Ln(6)
	pdf.Cell(0, 6, order.ShippingCountry)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Size", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Color", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.CellFormat(90, 8, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, item.Size.String, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, item.Color.String, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(8)
	pdf.Cell(0, 6, fmt.Sprintf("Shipping method: %s", order.ShippingMethod))
	pdf.Ln(10)

	qr, err := qrcode.New(fmt.Sprintf("%s/admin/orders/%s", baseURL, order.ID), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	var qrBuf bytes.Buffer
	if err := png.Encode(&qrBuf, qr.Image(256)); err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("order-qr", opts, &qrBuf)
	pdf.ImageOptions("order-qr", 160, 20, 35, 35, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return out.Bytes(), nil
}
