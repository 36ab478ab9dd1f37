package artifacts

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"crane_fmv/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const reportHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Fair Market Value Report {{.ReportID}}</title>
  <style>
    body { margin: 0; padding: 32px; font-family: "Helvetica Neue", Arial, sans-serif; color: #111827; }
    .report { max-width: 960px; margin: 0 auto; }
    .header { display: flex; justify-content: space-between; border-bottom: 2px solid #b45309; padding-bottom: 16px; margin-bottom: 24px; }
    .label { color: #6b7280; text-transform: uppercase; letter-spacing: 0.04em; font-size: 11px; }
    table { width: 100%; border-collapse: collapse; font-size: 13px; }
    th, td { padding: 8px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    th { text-transform: uppercase; font-size: 11px; color: #6b7280; }
    .num { text-align: right; white-space: nowrap; }
    .totals { margin-top: 12px; display: flex; justify-content: flex-end; font-size: 16px; }
    .totals strong { margin-left: 12px; }
    .footer { border-top: 1px solid #e5e7eb; margin-top: 24px; padding-top: 16px; font-size: 12px; color: #6b7280; }
  </style>
</head>
<body>
  <div class="report">
    <div class="header">
      <div>
        <div class="label">Fair Market Value Report</div>
        <div><strong>{{tierName .Type}}</strong></div>
        <div>Report {{.ReportID}}</div>
      </div>
      <div>
        <div class="label">Valuation</div>
        <div>Revision {{.Revision}}</div>
        <div>Computed {{formatTime .ComputedAt}}</div>
        <div>Market data {{.MarketSnapshot}}</div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th>#</th>
          <th>Asset</th>
          <th>Serial</th>
          <th>Year</th>
          <th>Hours</th>
          <th>Condition</th>
          <th>Location</th>
          <th class="num">Low</th>
          <th class="num">Estimate</th>
          <th class="num">High</th>
        </tr>
      </thead>
      <tbody>
        {{range .Results}}
        <tr>
          <td>{{.AssetPosition}}</td>
          <td>{{.Asset.Manufacturer}} {{.Asset.Model}} ({{formatTons .Asset.CapacityTons}} t)</td>
          <td>{{if .Asset.SerialNumber}}{{.Asset.SerialNumber}}{{else}}-{{end}}</td>
          <td>{{.Asset.Year}}</td>
          <td>{{.Asset.Hours}}</td>
          <td>{{.Asset.Condition}}</td>
          <td>{{.Asset.Location}}</td>
          <td class="num">{{formatMoney .Band.Low}}</td>
          <td class="num"><strong>{{formatMoney .EstimatedValue}}</strong></td>
          <td class="num">{{formatMoney .Band.High}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <div class="totals">
      <span>Total estimated value</span>
      <strong>{{formatMoney .Total}}</strong>
    </div>

    <div class="footer">
      Values are estimates of fair market value in USD for the assets as described at the time of valuation.
    </div>
  </div>
</body>
</html>
`

// RenderInput is everything that ends up in a report document. Two inputs
// with equal fields render to identical bytes.
type RenderInput struct {
	ReportID string
	Type     entities.ReportType
	Results  []entities.ValuationResult
}

type reportView struct {
	RenderInput
	Revision       int
	ComputedAt     time.Time
	MarketSnapshot string
	Total          decimal.Decimal
}

type HTMLRenderer struct {
	tpl *template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"formatMoney": formatMoney,
		"formatTime":  formatTime,
		"formatTons":  formatTons,
		"tierName":    tierName,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("report").Funcs(funcs).Parse(reportHTMLTemplate)),
	}
}

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Extension() string { return ".html" }

func (r *HTMLRenderer) Render(input RenderInput) ([]byte, error) {
	view := reportView{RenderInput: input, Total: decimal.Zero}
	for _, res := range input.Results {
		view.Total = view.Total.Add(res.EstimatedValue)
		if res.Revision > view.Revision {
			view.Revision = res.Revision
		}
		if res.ComputedAt.After(view.ComputedAt) {
			view.ComputedAt = res.ComputedAt
		}
		if view.MarketSnapshot == "" {
			view.MarketSnapshot = res.MarketSnapshot
		}
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMoney(amount decimal.Decimal) string {
	return "USD " + amount.StringFixed(2)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format(time.RFC3339)
}

func formatTons(value float64) string {
	return decimal.NewFromFloat(value).String()
}

func tierName(t entities.ReportType) string {
	switch t {
	case entities.ReportTypeSpotCheck:
		return "Spot Check"
	case entities.ReportTypeProfessional:
		return "Professional Appraisal"
	case entities.ReportTypeFleet:
		return "Fleet Valuation"
	}
	return strings.TrimSpace(string(t))
}
