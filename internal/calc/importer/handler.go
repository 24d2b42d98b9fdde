package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	displacement "github.com/Universe-Codex/PhyArch/internal/calc/displacement"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type MemberRow struct {
	Label string              `json:"label"`
	Input displacement.Input  `json:"input"`
	Res   displacement.Result `json:"result"`
}

type ImportResult struct {
	Count   int         `json:"count"`
	Members []MemberRow `json:"members"`
}

// Members accepts an XLSX upload with one member per row:
// label, force, length, area, elastic_modulus. The first row is a header.
func (h *Handler) Members(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var members []MemberRow
	for i := 1; i < len(rows); i++ {
		label, input, err := ParseMemberRow(rows[i])
		if err != nil {
			continue
		}
		res, err := displacement.Calculate(input)
		if err != nil {
			// Sentinel slot, same contract as the single-call endpoint.
			res = displacement.Result{}
		}
		members = append(members, MemberRow{Label: label, Input: input, Res: res})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(members), Members: members})
}

// ParseMemberRow expects: label, force, length, area, elastic_modulus.
func ParseMemberRow(row []string) (string, displacement.Input, error) {
	if len(row) < 5 {
		return "", displacement.Input{}, fmt.Errorf("bad row")
	}
	label := row[0]
	force, err := toFloat(row[1])
	if err != nil {
		return "", displacement.Input{}, err
	}
	length, err := toFloat(row[2])
	if err != nil {
		return "", displacement.Input{}, err
	}
	area, err := toFloat(row[3])
	if err != nil {
		return "", displacement.Input{}, err
	}
	modulus, err := toFloat(row[4])
	if err != nil {
		return "", displacement.Input{}, err
	}
	return label, displacement.Input{
		Force:   force,
		Length:  length,
		Area:    area,
		Modulus: modulus,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
