// Package htmllabel renders composed label documents into a self-contained
// printable HTML page. The page targets 100mm x 100mm thermal label stock
// with 2mm margins and triggers the browser print dialog on load.
package htmllabel

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"shipping/internal/core/domain/services"
)

const labelTemplate = `<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="utf-8">
<title>Kargo Etiketleri</title>
<style>
  @page { size: 100mm 100mm; margin: 2mm; }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: Arial, sans-serif; }
  .label { width: 96mm; height: 96mm; padding: 2mm; overflow: hidden; page-break-after: always; }
  .label.last-page { page-break-after: auto; }
  .header { font-size: 11pt; font-weight: bold; border-bottom: 1px solid #000; padding-bottom: 1mm; }
  .order-no { font-size: 9pt; margin-top: 1mm; }
  .address { font-size: 8pt; margin-top: 1mm; min-height: 8mm; }
  .barcode { text-align: center; margin-top: 2mm; }
  .barcode img { max-width: 90mm; height: 18mm; }
  .barcode .code-text { font-size: 8pt; letter-spacing: 1px; }
  .missing { font-size: 10pt; font-weight: bold; text-align: center; padding: 6mm 0; border: 1px dashed #000; margin-top: 2mm; }
  table { width: 100%; border-collapse: collapse; margin-top: 2mm; font-size: 8pt; }
  th, td { border: 1px solid #000; padding: 0.5mm 1mm; text-align: left; }
  .footer { font-size: 7pt; margin-top: 1mm; text-align: right; }
</style>
</head>
<body>
{{- range .Pages}}
<div class="label{{if .IsLast}} last-page{{end}}">
  <div class="header">{{.CustomerName}}{{if .Brand}} / {{.Brand}}{{end}}</div>
  <div class="order-no">Sipariş No: {{.OrderNumber}} &middot; Toplam: {{.TotalItems}} adet</div>
  <div class="address">{{if .Address}}{{.Address}}{{else}}Adres belirtilmemiş{{end}}</div>
  {{- if .MissingCode}}
  <div class="missing">BARKOD YOK</div>
  {{- else}}
  <div class="barcode">
    <img src="{{.BarcodeData}}" alt="{{.ShippingCode}}">
    <div class="code-text">{{.ShippingCode}}</div>
  </div>
  {{- end}}
  {{- if .Items}}
  <table>
    <tr><th>Ürün Kodu</th><th>Adet</th></tr>
    {{- range .Items}}
    <tr><td>{{.Code}}</td><td>{{.Quantity}}</td></tr>
    {{- end}}
  </table>
  {{- end}}
  <div class="footer">{{$.GeneratedAt}} &middot; {{.PageIndex}}/{{$.TotalPages}}</div>
</div>
{{- end}}
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`

type pageView struct {
	services.LabelPage

	// BarcodeData is the complete data URI for the barcode image. It is
	// typed as a trusted URL because html/template would otherwise
	// percent-encode the base64 payload.
	BarcodeData template.URL

	// IsLast suppresses the forced page break after the final label. A CSS
	// :last-child selector cannot do this because the print script is the
	// body's last element.
	IsLast bool
}

type documentView struct {
	TotalPages  int
	GeneratedAt string
	Pages       []pageView
}

// Renderer turns a label document into printable HTML.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates the HTML label renderer.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("labels").Parse(labelTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing label template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the full printable HTML for the document. Pages flagged
// with a missing code render a placeholder box instead of a barcode image.
func (r *Renderer) Render(doc *services.LabelDocument) ([]byte, error) {
	view := documentView{
		TotalPages:  doc.TotalPages(),
		GeneratedAt: doc.GeneratedAt.Format("02/01/2006 15:04"),
		Pages:       make([]pageView, 0, len(doc.Pages)),
	}
	for i, page := range doc.Pages {
		pv := pageView{LabelPage: page, IsLast: i == len(doc.Pages)-1}
		if len(page.BarcodeImage) > 0 {
			encoded := base64.StdEncoding.EncodeToString(page.BarcodeImage)
			pv.BarcodeData = template.URL("data:image/png;base64," + encoded)
		}
		view.Pages = append(view.Pages, pv)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("rendering label document %s: %w", doc.ID, err)
	}
	return buf.Bytes(), nil
}
