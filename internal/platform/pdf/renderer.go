// Package pdf renders printable report documents. The renderer is pure: it
// takes fully assembled report data and returns bytes, with no storage or
// network access of its own.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// FlaggedMarker is one out-of-range result shown on the summary.
type FlaggedMarker struct {
	Name   string
	Value  float64
	Unit   string
	Status string
}

// SignificantChange is one large value movement since the previous result.
type SignificantChange struct {
	Name      string
	Direction string // "increased" or "decreased"
	Change    float64
}

// Medication is an active prescription line.
type Medication struct {
	Name      string
	Dosage    string
	Frequency string
}

// Allergy is one reported allergy with its severity.
type Allergy struct {
	Name     string
	Severity string
}

// CategoryScore is one category row of the health overview table.
type CategoryScore struct {
	Name   string
	Score  int
	Status string
}

// HealthScores is the optional score section of the summary.
type HealthScores struct {
	Overall    int
	Categories []CategoryScore
}

// Insights is the optional AI-generated section of the summary.
type Insights struct {
	Summary              string
	LifestyleSuggestions []string
}

// VisitSummaryData is everything the visit summary document shows.
type VisitSummaryData struct {
	PatientName        string
	ReportDate         time.Time
	FlaggedMarkers     []FlaggedMarker
	SignificantChanges []SignificantChange
	Medications        []Medication
	Conditions         []string
	Allergies          []Allergy
	Questions          []string
	Scores             *HealthScores
	AIInsights         *Insights
}

// Renderer builds report PDFs. Construct one at startup and share it; it
// holds no mutable state.
type Renderer struct {
	now func() time.Time
}

// RendererOption customizes a Renderer.
type RendererOption func(*Renderer)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) { r.now = now }
}

// NewRenderer creates a report renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const (
	pageMargin = 20.0
	lineHeight = 6.0
)

// slate/red/green palette used across sections
var (
	colorBrand   = rgb{14, 165, 233}
	colorInk     = rgb{30, 41, 59}
	colorMuted   = rgb{100, 116, 139}
	colorFaint   = rgb{148, 163, 184}
	colorHeadBg  = rgb{241, 245, 249}
	colorFlagBg  = rgb{254, 226, 226}
	colorDanger  = rgb{239, 68, 68}
	colorHealthy = rgb{16, 185, 129}
	colorAmber   = rgb{245, 158, 11}
)

type rgb struct{ r, g, b int }

type doc struct {
	*fpdf.Fpdf
	width float64
}

func newDoc() *doc {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetMargins(pageMargin, pageMargin, pageMargin)
	f.SetAutoPageBreak(true, pageMargin)
	f.AddPage()
	w, _ := f.GetPageSize()
	return &doc{Fpdf: f, width: w - 2*pageMargin}
}

func (d *doc) setColor(c rgb)     { d.SetTextColor(c.r, c.g, c.b) }
func (d *doc) setFillColor(c rgb) { d.SetFillColor(c.r, c.g, c.b) }

func (d *doc) title(text string) {
	d.SetFont("Helvetica", "B", 24)
	d.setColor(colorBrand)
	d.CellFormat(d.width, 12, text, "", 1, "C", false, 0, "")
}

func (d *doc) subtitle(text string) {
	d.SetFont("Helvetica", "B", 14)
	d.setColor(colorInk)
	d.CellFormat(d.width, 8, text, "", 1, "C", false, 0, "")
	d.Ln(4)
}

func (d *doc) sectionHeader(text string) {
	d.Ln(4)
	d.SetFont("Helvetica", "B", 13)
	d.setColor(colorInk)
	d.CellFormat(d.width, 8, text, "", 1, "L", false, 0, "")
	d.Ln(1)
}

func (d *doc) body(text string) {
	d.SetFont("Helvetica", "", 10)
	d.setColor(colorInk)
	d.MultiCell(d.width, lineHeight, text, "", "L", false)
}

func (d *doc) small(text string) {
	d.SetFont("Helvetica", "", 8)
	d.setColor(colorFaint)
	d.MultiCell(d.width, 4.5, text, "", "L", false)
}

func (d *doc) bullet(text string, c rgb) {
	d.SetFont("Helvetica", "", 10)
	d.setColor(c)
	d.MultiCell(d.width, lineHeight, "- "+text, "", "L", false)
}

func (d *doc) rule() {
	d.Ln(2)
	d.SetDrawColor(226, 232, 240)
	x, y := d.GetX(), d.GetY()
	d.Line(x, y, x+d.width, y)
	d.Ln(4)
}

func (d *doc) tableHeader(bg rgb, widths []float64, cells []string) {
	d.SetFont("Helvetica", "B", 9)
	d.setColor(colorInk)
	d.setFillColor(bg)
	for i, cell := range cells {
		d.CellFormat(widths[i], 7, cell, "1", 0, "L", true, 0, "")
	}
	d.Ln(-1)
}

func (d *doc) tableRow(widths []float64, cells []string, cellColors []rgb) {
	d.SetFont("Helvetica", "", 9)
	for i, cell := range cells {
		if cellColors != nil {
			d.setColor(cellColors[i])
		} else {
			d.setColor(colorInk)
		}
		d.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
	}
	d.Ln(-1)
}

// VisitSummary renders the visit preparation summary document.
func (r *Renderer) VisitSummary(data VisitSummaryData) ([]byte, error) {
	d := newDoc()

	d.title("HealthCanvas")
	d.subtitle("Visit Preparation Summary")

	r.patientInfo(d, data)
	d.rule()

	if data.Scores != nil {
		r.healthScores(d, data.Scores)
	}
	if len(data.FlaggedMarkers) > 0 {
		r.flaggedMarkers(d, data.FlaggedMarkers)
	}
	if len(data.SignificantChanges) > 0 {
		r.significantChanges(d, data.SignificantChanges)
	}
	r.medications(d, data.Medications)
	r.conditions(d, data.Conditions)
	r.allergies(d, data.Allergies)
	if data.AIInsights != nil && data.AIInsights.Summary != "" {
		r.insights(d, data.AIInsights)
	}
	r.questions(d, data.Questions)
	r.disclaimer(d)

	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		return nil, fmt.Errorf("render visit summary: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) patientInfo(d *doc, data VisitSummaryData) {
	name := data.PatientName
	if name == "" {
		name = "Not specified"
	}
	rows := [][2]string{
		{"Patient:", name},
		{"Report Date:", data.ReportDate.Format("January 2, 2006")},
		{"Generated:", r.now().Format("January 2, 2006 at 3:04 PM")},
	}
	for _, row := range rows {
		d.SetFont("Helvetica", "B", 10)
		d.setColor(colorMuted)
		d.CellFormat(32, lineHeight, row[0], "", 0, "L", false, 0, "")
		d.SetFont("Helvetica", "", 10)
		d.setColor(colorInk)
		d.CellFormat(d.width-32, lineHeight, row[1], "", 1, "L", false, 0, "")
	}
}

func (r *Renderer) healthScores(d *doc, scores *HealthScores) {
	d.sectionHeader("Health Overview")
	d.body(fmt.Sprintf("Overall Health Score: %d", scores.Overall))
	if len(scores.Categories) > 0 {
		widths := []float64{60, 30, 40}
		d.tableHeader(colorHeadBg, widths, []string{"Category", "Score", "Status"})
		for _, cat := range scores.Categories {
			d.tableRow(widths, []string{cat.Name, fmt.Sprintf("%d", cat.Score), cat.Status}, nil)
		}
	}
}

func (r *Renderer) flaggedMarkers(d *doc, markers []FlaggedMarker) {
	d.sectionHeader("Flagged Markers")
	d.small("The following markers are outside the normal reference range and should be discussed with your healthcare provider.")
	d.Ln(2)
	widths := []float64{60, 30, 25, 35}
	d.tableHeader(colorFlagBg, widths, []string{"Marker", "Value", "Unit", "Status"})
	for _, m := range markers {
		d.tableRow(widths,
			[]string{m.Name, formatValue(m.Value), m.Unit, strings.ToUpper(m.Status)},
			[]rgb{colorInk, colorInk, colorInk, colorDanger})
	}
}

func (r *Renderer) significantChanges(d *doc, changes []SignificantChange) {
	d.sectionHeader("Significant Changes")
	d.small("These markers have changed by more than 15% since your last test.")
	d.Ln(2)
	for _, ch := range changes {
		arrow, c := "down", colorHealthy
		if ch.Direction == "increased" {
			arrow, c = "up", colorDanger
		}
		mag := ch.Change
		if mag < 0 {
			mag = -mag
		}
		d.bullet(fmt.Sprintf("%s: %s %.1f%%", ch.Name, arrow, mag), c)
	}
}

func (r *Renderer) medications(d *doc, meds []Medication) {
	d.sectionHeader("Current Medications")
	if len(meds) == 0 {
		d.small("No medications reported")
		return
	}
	for _, m := range meds {
		dosage, freq := m.Dosage, m.Frequency
		if dosage == "" {
			dosage = "N/A"
		}
		if freq == "" {
			freq = "N/A"
		}
		d.bullet(fmt.Sprintf("%s - %s (%s)", m.Name, dosage, freq), colorInk)
	}
}

func (r *Renderer) conditions(d *doc, conditions []string) {
	d.sectionHeader("Active Conditions")
	if len(conditions) == 0 {
		d.small("No active conditions reported")
		return
	}
	for _, c := range conditions {
		d.bullet(c, colorInk)
	}
}

func (r *Renderer) allergies(d *doc, allergies []Allergy) {
	d.sectionHeader("Allergies")
	if len(allergies) == 0 {
		d.small("No allergies reported")
		return
	}
	for _, a := range allergies {
		severity := a.Severity
		if severity == "" {
			severity = "unknown"
		}
		c := colorInk
		if severity == "severe" {
			c = colorDanger
		}
		d.bullet(fmt.Sprintf("%s (%s)", a.Name, severity), c)
	}
}

func (r *Renderer) insights(d *doc, in *Insights) {
	d.sectionHeader("AI Health Insights")
	d.body(in.Summary)
	if len(in.LifestyleSuggestions) > 0 {
		d.SetFont("Helvetica", "B", 11)
		d.setColor(colorMuted)
		d.CellFormat(d.width, lineHeight, "Lifestyle Considerations:", "", 1, "L", false, 0, "")
		for _, s := range in.LifestyleSuggestions {
			d.bullet(s, colorInk)
		}
	}
}

func (r *Renderer) questions(d *doc, questions []string) {
	d.sectionHeader("Questions for Your Doctor")
	for i, q := range questions {
		d.body(fmt.Sprintf("%d. %s", i+1, q))
	}
}

func (r *Renderer) disclaimer(d *doc) {
	d.Ln(4)
	d.rule()
	d.SetFont("Helvetica", "", 9)
	d.setColor(colorAmber)
	d.MultiCell(d.width, 5,
		"DISCLAIMER: This report is for informational purposes only and does not constitute medical advice. "+
			"Always consult with a qualified healthcare provider for diagnosis and treatment decisions. "+
			"The AI-generated insights are educational and should not replace professional medical judgment.",
		"", "L", false)
	d.Ln(4)
	d.small("Generated by HealthCanvas, " + r.now().Format("2006-01-02 15:04"))
}

func formatValue(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
