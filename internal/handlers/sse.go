package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"demotrack/internal/models"
	"demotrack/internal/services"
	"github.com/starfederation/datastar-go/datastar"
)

const maxTableRows = 50

var customerTableTemplate = template.Must(template.New("customerTable").Parse(`
<div id="customers-content">
<table class="modern-table">
<thead><tr><th>Company</th><th>Industry</th><th>Status</th><th>Sales</th><th>Revenue</th><th>Last Contact</th></tr></thead>
<tbody>
{{range $i, $c := .Customers}}{{if lt $i $.MaxRows}}<tr>
<td>{{.Company}}</td>
<td>{{.Industry}}</td>
<td><span class="status-badge">{{.Status}}</span></td>
<td>{{len .Revenue.Sales}}</td>
<td><strong>${{printf "%.2f" .Revenue.TotalAmount}}</strong></td>
<td>{{.LastContact.Format "2006-01-02"}}</td>
</tr>{{end}}{{end}}
</tbody>
</table>
</div>`))

type SSEHandlers struct {
	ledger    *services.Ledger
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(ledger *services.Ledger, analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		ledger:    ledger,
		analytics: analytics,
		logger:    logger,
	}
}

type customerTableData struct {
	Customers []models.CustomerProfile
	MaxRows   int
}

func (h *SSEHandlers) renderCustomerTable(customers []models.CustomerProfile) (string, error) {
	var buf strings.Builder

	if len(customers) > maxTableRows {
		customers = customers[:maxTableRows]
	}

	err := customerTableTemplate.Execute(&buf, customerTableData{
		Customers: customers,
		MaxRows:   maxTableRows,
	})
	return buf.String(), err
}

func (h *SSEHandlers) HandleCustomers(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderCustomerTable(h.ledger.Customers())
	if err != nil {
		h.logger.Error("render customer table", "error", err)
		return
	}

	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	jsonData, err := json.Marshal(map[string]any{
		"metricsData": h.analytics.Summary(),
	})
	if err != nil {
		h.logger.Error("marshal metrics data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="metrics-content">✅ Metrics data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleCategoryPerformance(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	jsonData, err := json.Marshal(map[string]any{
		"categoryData": h.analytics.CategoryPerformance(),
	})
	if err != nil {
		h.logger.Error("marshal category data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="category-content">✅ Category performance data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderCustomerTable(h.ledger.Customers())
	if err != nil {
		h.logger.Error("render customer table", "error", err)
		return
	}
	sse.PatchElements(html)

	allSignals, err := json.Marshal(map[string]any{
		"metricsData":  h.analytics.Summary(),
		"categoryData": h.analytics.CategoryPerformance(),
	})
	if err != nil {
		h.logger.Error("marshal all signals data", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
