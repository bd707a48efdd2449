package spanql

import "testing"

// Hostile inputs must be rejected at construction time, before any SQL exists
// for them to corrupt.

func TestInjection_TableNames(t *testing.T) {
	malicious := []string{
		"users; DROP TABLE users",
		"users--",
		"users/*",
		"users'",
		"users\"",
		"users`",
		"users union select",
		"",
	}

	for _, name := range malicious {
		t.Run(name, func(t *testing.T) {
			if _, err := TryT(name); err == nil {
				t.Errorf("TryT(%q) accepted a hostile table name", name)
			}
		})
	}
}

func TestInjection_FieldNames(t *testing.T) {
	malicious := []string{
		"id; DELETE FROM users",
		"id OR 1=1",
		"id'--",
		"id\x00",
		"id\n",
	}

	for _, name := range malicious {
		t.Run(name, func(t *testing.T) {
			if _, err := TryF(name); err == nil {
				t.Errorf("TryF(%q) accepted a hostile field name", name)
			}
		})
	}
}

func TestInjection_ParamNames(t *testing.T) {
	malicious := []string{
		"p; DROP TABLE users",
		"p' OR '1'='1",
		"p/*comment*/",
		"p--",
	}

	for _, name := range malicious {
		t.Run(name, func(t *testing.T) {
			if _, err := TryP(name); err == nil {
				t.Errorf("TryP(%q) accepted a hostile parameter name", name)
			}
		})
	}
}

func TestInjection_Aliases(t *testing.T) {
	if _, err := TryT("users", "u; DROP TABLE users"); err == nil {
		t.Error("hostile alias accepted")
	}
	if _, err := TryT("users", "uu"); err == nil {
		t.Error("multi-letter alias accepted")
	}
}
