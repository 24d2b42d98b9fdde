package stress

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{Force: 1000.0, Area: 10.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stress != 100.0 {
		t.Errorf("expected 100.0, got %g", res.Stress)
	}
	if !res.Valid {
		t.Error("expected valid result")
	}
}

func TestCalculateInvalidArea(t *testing.T) {
	for _, area := range []float64{0.0, -5.0} {
		if _, err := Calculate(Input{Force: 500.0, Area: area}); err == nil {
			t.Errorf("area %g: expected error", area)
		}
	}
}

func TestHandlerSentinel(t *testing.T) {
	h := &Handler{}

	cases := []struct {
		name  string
		body  string
		want  float64
		valid bool
	}{
		{"ok", `{"force":1000,"area":10}`, 100.0, true},
		{"zero area", `{"force":500,"area":0}`, 0.0, false},
		{"negative area", `{"force":500,"area":-5}`, 0.0, false},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/tools/stress/calc", strings.NewReader(c.body))
		rec := httptest.NewRecorder()
		h.Calc(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", c.name, rec.Code)
		}
		var res Result
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("%s: decode: %v", c.name, err)
		}
		if res.Stress != c.want {
			t.Errorf("%s: stress = %g, want %g", c.name, res.Stress, c.want)
		}
		if res.Valid != c.valid {
			t.Errorf("%s: valid = %v, want %v", c.name, res.Valid, c.valid)
		}
	}
}

func TestHandlerBadPayload(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/tools/stress/calc", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed payload, got %d", rec.Code)
	}
}
