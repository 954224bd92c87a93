package validator_test

import (
	"strings"
	"testing"

	"glow/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Name   string   `validate:"required,min=2"           json:"name"`
	Email  string   `validate:"required,email"           json:"email"`
	Date   string   `validate:"required,datetime=2006-01-02" json:"date"`
	Time   string   `validate:"required,datetime=15:04"  json:"time"`
	Items  []string `validate:"required,min=1"           json:"items"`
	Agreed bool     `validate:"required,eq=true"         json:"agreed"`
}

func validStruct() *ValidTestStruct {
	return &ValidTestStruct{
		Name:   "John Doe",
		Email:  "john@example.com",
		Date:   "2025-06-01",
		Time:   "14:30",
		Items:  []string{"Massage"},
		Agreed: true,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ValidTestStruct)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(*ValidTestStruct) {},
			expectError: false,
		},
		{
			name:        "missing required field",
			mutate:      func(s *ValidTestStruct) { s.Name = "" },
			expectError: true,
		},
		{
			name:        "name too short",
			mutate:      func(s *ValidTestStruct) { s.Name = "J" },
			expectError: true,
		},
		{
			name:        "invalid email",
			mutate:      func(s *ValidTestStruct) { s.Email = "invalid-email" },
			expectError: true,
		},
		{
			name:        "malformed date",
			mutate:      func(s *ValidTestStruct) { s.Date = "01-06-2025" },
			expectError: true,
		},
		{
			name:        "malformed time",
			mutate:      func(s *ValidTestStruct) { s.Time = "2pm" },
			expectError: true,
		},
		{
			name:        "empty items",
			mutate:      func(s *ValidTestStruct) { s.Items = []string{} },
			expectError: true,
		},
		{
			name:        "agreed false",
			mutate:      func(s *ValidTestStruct) { s.Agreed = false },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validStruct()
			tt.mutate(data)

			err := validator.ValidateStruct(data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid json body", func(t *testing.T) {
		body := `{"name":"John Doe","email":"john@example.com","date":"2025-06-01","time":"14:30","items":["Massage"],"agreed":true}`

		var data ValidTestStruct
		if err := validator.Validate(strings.NewReader(body), &data); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("malformed json body", func(t *testing.T) {
		var data ValidTestStruct
		if err := validator.Validate(strings.NewReader("{not json"), &data); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("json body failing validation", func(t *testing.T) {
		body := `{"name":"John Doe","email":"john@example.com","date":"2025-06-01","time":"14:30","items":["Massage"],"agreed":false}`

		var data ValidTestStruct
		if err := validator.Validate(strings.NewReader(body), &data); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2025-06-01", "datetime=2006-01-02"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("not-a-date", "datetime=2006-01-02"); err == nil {
		t.Error("expected error, got nil")
	}
}
