package spanql

import (
	"strings"
	"testing"
)

func TestP(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Valid cases
		{"Simple name", "userId", false},
		{"With underscore", "user_id", false},
		{"With numbers", "user123", false},
		{"Mixed case", "UserID", false},
		{"Long name", "very_long_parameter_name_123", false},

		// Invalid cases
		{"Empty string", "", true},
		{"Starts with number", "123user", true},
		{"Starts with underscore", "_user", true},
		{"Contains space", "user id", true},
		{"Contains dash", "user-id", true},
		{"Contains dot", "user.id", true},
		{"SQL injection attempt", "user'; DROP TABLE--", true},
		{"Contains comment", "user/*comment*/", true},
		{"Contains quote", "user'id", true},
		{"Contains semicolon", "user;id", true},
		{"Contains backslash", "user\\id", true},

		// SQL keywords
		{"SELECT keyword", "select", true},
		{"DELETE keyword", "delete", true},
		{"WHERE keyword", "where", true},
		{"NULL keyword", "null", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TryP(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("TryP(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestP_PanicsOnInvalid(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for invalid parameter name")
		}
		if !strings.Contains(r.(error).Error(), "invalid parameter name") {
			t.Errorf("unexpected panic message: %v", r)
		}
	}()
	P("drop table")
}

func TestNullValue(t *testing.T) {
	p := NullValue()
	if !p.IsNull() {
		t.Error("NullValue() should produce the NULL marker")
	}
	if p.Name != "" {
		t.Errorf("NULL marker should carry no name, got %q", p.Name)
	}
}
