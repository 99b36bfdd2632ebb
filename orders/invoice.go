package orders

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"mercato/db"
	"mercato/globals"
	"mercato/models"
	"mercato/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GenerateQRPayload returns orderID|userID|timestamp|signature so a
// scanned invoice can be verified against tampering.
func GenerateQRPayload(orderID, userID string) string {
	data := fmt.Sprintf("%s|%s|%d", orderID, userID, time.Now().Unix())

	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintInvoice renders the order as a PDF with a verification QR code.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, ok := loadAuthorized(ctx, w, r, ps.ByName("orderid"))
	if !ok {
		return
	}

	qrPNG, err := qrcode.Encode(GenerateQRPayload(order.OrderID, order.UserID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	products := productNames(ctx, order)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order ID: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", order.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Items")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		name := products[item.ProductID]
		if name == "" {
			name = item.ProductID
		}
		pdf.Cell(0, 7, fmt.Sprintf("%s  x%d", name, item.Quantity))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	if order.DiscountCode != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Discount applied: %s", order.DiscountCode))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f", order.TotalAmount))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func productNames(ctx context.Context, order models.Order) map[string]string {
	ids := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	list, err := utils.FindAndDecode[models.Product](ctx, db.ProductCollection, bson.M{"productid": bson.M{"$in": ids}})
	if err != nil {
		return nil
	}
	names := make(map[string]string, len(list))
	for _, p := range list {
		names[p.ProductID] = p.Name
	}
	return names
}
