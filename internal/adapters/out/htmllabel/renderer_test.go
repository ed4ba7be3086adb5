package htmllabel_test

import (
	"strings"
	"testing"
	"time"

	"shipping/internal/adapters/out/htmllabel"
	"shipping/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDoc(t *testing.T, pages []services.LabelPage) string {
	t.Helper()

	renderer, err := htmllabel.NewRenderer()
	require.NoError(t, err)

	html, err := renderer.Render(&services.LabelDocument{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
		Pages:       pages,
	})
	require.NoError(t, err)
	return string(html)
}

func TestRenderer_Render(t *testing.T) {
	t.Run("page_carries_order_details_and_barcode", func(t *testing.T) {
		html := renderDoc(t, []services.LabelPage{{
			PageIndex:    1,
			OrderNumber:  "1001_Ayşe Yılmaz",
			CustomerName: "Ayşe Yılmaz",
			Address:      "Çiçek Mah. 12 No:5",
			Brand:        "Beste Koku",
			TotalItems:   2,
			ShippingCode: "KARGO123",
			BarcodeImage: []byte{0x89, 0x50, 0x4e, 0x47},
			Items:        []services.LabelLine{{Code: "LAV-1", Quantity: 2}},
		}})

		// The total item count sits on the order-number line.
		assert.Contains(t, html, "Sipariş No: 1001_Ayşe Yılmaz &middot; Toplam: 2 adet")
		assert.Contains(t, html, "Ayşe Yılmaz / Beste Koku")
		assert.Contains(t, html, "Çiçek Mah. 12 No:5")
		assert.Contains(t, html, "data:image/png;base64,iVBORw==")
		assert.Contains(t, html, "KARGO123")
		assert.Contains(t, html, "<td>LAV-1</td><td>2</td>")
		assert.NotContains(t, html, "BARKOD YOK")
	})

	t.Run("missing_code_renders_placeholder", func(t *testing.T) {
		html := renderDoc(t, []services.LabelPage{{
			PageIndex:    1,
			OrderNumber:  "ORD_1",
			CustomerName: "Mehmet Kaya",
			MissingCode:  true,
		}})

		assert.Contains(t, html, "BARKOD YOK")
		assert.NotContains(t, html, "data:image/png")
	})

	t.Run("one_label_div_per_page", func(t *testing.T) {
		html := renderDoc(t, []services.LabelPage{
			{PageIndex: 1, OrderNumber: "ORD_1", MissingCode: true},
			{PageIndex: 2, OrderNumber: "ORD_2", MissingCode: true},
			{PageIndex: 3, OrderNumber: "ORD_3", MissingCode: true},
		})

		assert.Equal(t, 2, strings.Count(html, `<div class="label">`))
		assert.Equal(t, 1, strings.Count(html, `<div class="label last-page">`))
		assert.Contains(t, html, "3/3")
	})

	t.Run("document_is_printable", func(t *testing.T) {
		html := renderDoc(t, []services.LabelPage{
			{PageIndex: 1, OrderNumber: "ORD_1", MissingCode: true},
			{PageIndex: 2, OrderNumber: "ORD_2", MissingCode: true},
		})

		assert.Contains(t, html, "size: 100mm 100mm; margin: 2mm;")
		assert.Contains(t, html, "page-break-after: always")
		assert.Contains(t, html, ".label.last-page { page-break-after: auto; }")
		assert.Contains(t, html, "window.print()")

		// Only the final label suppresses the forced page break, so the
		// printer does not feed a blank label after the batch.
		lastLabel := strings.LastIndex(html, `<div class="label last-page">`)
		plainLabel := strings.LastIndex(html, `<div class="label">`)
		assert.Greater(t, lastLabel, plainLabel)
	})

	t.Run("footer_carries_generation_time", func(t *testing.T) {
		renderer, err := htmllabel.NewRenderer()
		require.NoError(t, err)

		html, err := renderer.Render(&services.LabelDocument{
			ID:          uuid.New(),
			GeneratedAt: time.Date(2024, 5, 12, 14, 30, 0, 0, time.Local),
			Pages:       []services.LabelPage{{PageIndex: 1, OrderNumber: "ORD_1", MissingCode: true}},
		})
		require.NoError(t, err)
		assert.Contains(t, string(html), "12/05/2024 14:30")
	})

	t.Run("missing_address_renders_fallback_text", func(t *testing.T) {
		html := renderDoc(t, []services.LabelPage{{PageIndex: 1, OrderNumber: "ORD_1", MissingCode: true}})
		assert.Contains(t, html, "Adres belirtilmemiş")
	})

	t.Run("customer_name_is_escaped", func(t *testing.T) {
		html := renderDoc(t, []services.LabelPage{{
			PageIndex:    1,
			OrderNumber:  "ORD_1",
			CustomerName: "<script>alert(1)</script>",
			MissingCode:  true,
		}})

		assert.NotContains(t, html, "<script>alert(1)</script>")
	})
}
