// Package render turns a stored roadmap into an HTML page or a PDF document.
// Both renderers are pure functions of the record: no storage or network
// access, and phase/initiative ordering is emitted exactly as stored.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"ai-roadmap-backend/internal/database/models"

	"github.com/go-pdf/fpdf"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Page renders the roadmap as a standalone HTML document. The mermaid chart
// text is emitted verbatim for client-side rendering.
func Page(roadmap *models.Roadmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "roadmap.html.tmpl", roadmap); err != nil {
		return nil, fmt.Errorf("failed to render roadmap page: %w", err)
	}
	return buf.Bytes(), nil
}

// Form renders the submission form page
func Form() ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index.html.tmpl", nil); err != nil {
		return nil, fmt.Errorf("failed to render form page: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renders the roadmap as an A4 document. The layout is fixed-page with no
// viewport dependence, and compression is disabled so output is deterministic
// for a given record.
func PDF(roadmap *models.Roadmap) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCreationDate(roadmap.CreatedAt)
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, "AI Implementation Roadmap", "", "L", false)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(90, 100, 114)
	meta := fmt.Sprintf("%s  |  Size: %s  |  Industry: %s  |  AI maturity: %s",
		roadmap.OrganizationName, roadmap.OrganizationSize, roadmap.Industry, roadmap.AIMaturity)
	pdf.MultiCell(0, 6, meta, "", "L", false)
	pdf.MultiCell(0, 6, "Goals: "+strings.Join(roadmap.Goals, ", "), "", "L", false)
	pdf.Ln(4)

	for _, phase := range roadmap.Phases {
		pdf.SetTextColor(29, 36, 48)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, fmt.Sprintf("%s (%s)", phase.Label, phase.Timeframe), "", "L", false)

		for _, initiative := range phase.Initiatives {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, fmt.Sprintf("%s  [%s]", initiative.Title, initiative.Priority), "", "L", false)
			if initiative.Description != "" {
				pdf.SetFont("Helvetica", "", 10)
				pdf.SetTextColor(90, 100, 114)
				pdf.MultiCell(0, 5, initiative.Description, "", "L", false)
				pdf.SetTextColor(29, 36, 48)
			}
			pdf.Ln(1)
		}
		pdf.Ln(3)
	}

	if roadmap.MermaidChart != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, "Timeline", "", "L", false)
		pdf.SetFont("Courier", "", 8)
		for _, line := range strings.Split(roadmap.MermaidChart, "\n") {
			pdf.MultiCell(0, 4, line, "", "L", false)
		}
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(140, 148, 160)
	pdf.Ln(6)
	pdf.MultiCell(0, 4, "Generated "+roadmap.CreatedAt.Format("2006-01-02 15:04 MST"), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render roadmap pdf: %w", err)
	}
	return buf.Bytes(), nil
}
