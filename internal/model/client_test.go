package model

import (
	"encoding/json"
	"testing"
)

func TestClient_Year(t *testing.T) {
	tests := []struct {
		name      string
		closeDate string
		wantYear  int
		wantOK    bool
	}{
		{name: "well-formed date", closeDate: "2025-03-14", wantYear: 2025, wantOK: true},
		{name: "year only", closeDate: "2024", wantYear: 2024, wantOK: true},
		{name: "empty", closeDate: "", wantOK: false},
		{name: "too short", closeDate: "20", wantOK: false},
		{name: "non-numeric year", closeDate: "soon-ish", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, ok := Client{CloseDate: tt.closeDate}.Year()
			if ok != tt.wantOK {
				t.Fatalf("Year() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && year != tt.wantYear {
				t.Errorf("Year() = %d, want %d", year, tt.wantYear)
			}
		})
	}
}

func TestClient_MonthKey(t *testing.T) {
	tests := []struct {
		name      string
		closeDate string
		wantKey   string
		wantOK    bool
	}{
		{name: "well-formed date", closeDate: "2025-03-14", wantKey: "2025-03", wantOK: true},
		{name: "month boundary", closeDate: "2024-12-31", wantKey: "2024-12", wantOK: true},
		{name: "missing month", closeDate: "2025", wantOK: false},
		{name: "wrong separator", closeDate: "2025/03/14", wantOK: false},
		{name: "empty", closeDate: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := Client{CloseDate: tt.closeDate}.MonthKey()
			if ok != tt.wantOK {
				t.Fatalf("MonthKey() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && key != tt.wantKey {
				t.Errorf("MonthKey() = %q, want %q", key, tt.wantKey)
			}
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{name: "plain number", json: `{"amount": 1234.56}`, want: 1234.56},
		{name: "integer", json: `{"amount": 500}`, want: 500},
		{name: "legacy currency string", json: `{"amount": "USD 1,234.56"}`, want: 1234.56},
		{name: "dollar sign string", json: `{"amount": "$99"}`, want: 99},
		{name: "garbage string coerces to zero", json: `{"amount": "n/a"}`, want: 0},
		{name: "null coerces to zero", json: `{"amount": null}`, want: 0},
		{name: "missing defaults to zero", json: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record Client
			if err := json.Unmarshal([]byte(tt.json), &record); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if float64(record.Amount) != tt.want {
				t.Errorf("Amount = %v, want %v", record.Amount, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "USD 1,234.56", want: 1234.56},
		{input: "1234.56", want: 1234.56},
		{input: "$1,000", want: 1000},
		{input: "", want: 0},
		{input: "free", want: 0},
	}

	for _, tt := range tests {
		if got := ParseAmount(tt.input); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
