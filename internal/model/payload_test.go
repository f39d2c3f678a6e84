package model

import (
	"errors"
	"testing"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		validate func(*testing.T, *Payload)
	}{
		{
			name:  "full document",
			input: `{"clients":[{"id":"a","name":"Acme","closeDate":"2025-01-10","amount":100,"isChecked":true,"notes":""}],"receiptsGoal":55,"checkedRows":["a"],"searchTerm":"ac","activeYear":2025,"availableYears":[2024,2025]}`,
			validate: func(t *testing.T, p *Payload) {
				t.Helper()
				if len(p.Clients) != 1 || p.Clients[0].Name != "Acme" {
					t.Errorf("clients not parsed: %+v", p.Clients)
				}
				if p.ReceiptsGoal == nil || *p.ReceiptsGoal != 55 {
					t.Errorf("receiptsGoal = %v, want 55", p.ReceiptsGoal)
				}
				if p.ActiveYear == nil || *p.ActiveYear != 2025 {
					t.Errorf("activeYear = %v, want 2025", p.ActiveYear)
				}
			},
		},
		{
			name:  "clients only",
			input: `{"clients":[]}`,
			validate: func(t *testing.T, p *Payload) {
				t.Helper()
				if p.Clients == nil || len(p.Clients) != 0 {
					t.Errorf("expected empty clients, got %+v", p.Clients)
				}
				if p.ReceiptsGoal != nil || p.SearchTerm != nil || p.ActiveYear != nil {
					t.Error("absent optional fields should stay nil")
				}
			},
		},
		{
			name:  "ill-typed optional fields fall back",
			input: `{"clients":[],"receiptsGoal":"lots","searchTerm":7,"activeYear":"next","availableYears":"all","checkedRows":{"a":true}}`,
			validate: func(t *testing.T, p *Payload) {
				t.Helper()
				if p.ReceiptsGoal != nil || p.SearchTerm != nil || p.ActiveYear != nil {
					t.Error("ill-typed optional fields should fall back to nil")
				}
				if p.CheckedRows != nil || p.AvailableYears != nil {
					t.Error("ill-typed optional slices should fall back to nil")
				}
			},
		},
		{name: "not json", input: `{not json`, wantErr: true},
		{name: "not an object", input: `[1,2,3]`, wantErr: true},
		{name: "clients missing", input: `{"receiptsGoal":10}`, wantErr: true},
		{name: "clients null", input: `{"clients":null}`, wantErr: true},
		{name: "clients not an array", input: `{"clients":"many"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := ParsePayload([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePayload() error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, payload)
			}
		})
	}
}

func TestParsePayload_ValidationErrorType(t *testing.T) {
	_, err := ParsePayload([]byte(`{"clients":"nope"}`))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if vErr.Field != "clients" {
		t.Errorf("Field = %q, want clients", vErr.Field)
	}
}
