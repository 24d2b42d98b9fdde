package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	displacement "github.com/Universe-Codex/PhyArch/internal/calc/displacement"
	stress "github.com/Universe-Codex/PhyArch/internal/calc/stress"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project       string               `json:"project"`
	Author        string               `json:"author"`
	Title         string               `json:"title"`
	Notes         string               `json:"notes"`
	Stress        []stress.Input       `json:"stress"`
	Displacements []displacement.Input `json:"displacements"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Unit Calculation Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if len(input.Stress) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Axial stress, sigma = F/A")
		pdf.Ln(9)
		pdf.SetFont("Courier", "", 10)
		for i, item := range input.Stress {
			res, err := stress.Calculate(item)
			if err != nil {
				res = stress.Result{}
			}
			pdf.Cell(0, 5, fmt.Sprintf("%2d  F=%-12g A=%-12g sigma=%g", i+1, item.Force, item.Area, res.Stress))
			pdf.Ln(5)
		}
		pdf.Ln(5)
	}

	if len(input.Displacements) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Axial displacement, delta = FL/(AE)")
		pdf.Ln(9)
		pdf.SetFont("Courier", "", 10)
		for i, item := range input.Displacements {
			res, err := displacement.Calculate(item)
			if err != nil {
				res = displacement.Result{}
			}
			pdf.Cell(0, 5, fmt.Sprintf("%2d  F=%-10g L=%-8g A=%-10g E=%-12g delta=%g",
				i+1, item.Force, item.Length, item.Area, item.Modulus, res.Displacement))
			pdf.Ln(5)
		}
		pdf.Ln(5)
	}

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
