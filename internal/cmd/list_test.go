package cmd

import (
	"errors"
	"testing"
)

func TestListCmd_Sections(t *testing.T) {
	app, out, _ := setupTestApp(t)
	seedStore(t, app, "zeta", map[string]string{"k": "v"})
	seedStore(t, app, "alpha", map[string]string{"k": "v"})

	if err := runCmd(newListCmd(NewTestProvider(app))); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got := out.String(); got != "zeta\nalpha\n" {
		t.Errorf("list output = %q, want file order", got)
	}
}

func TestListCmd_Options(t *testing.T) {
	app, out, _ := setupTestApp(t)
	seedStore(t, app, "s", map[string]string{"only": "v"})

	if err := runCmd(newListCmd(NewTestProvider(app)), "s"); err != nil {
		t.Fatalf("list s failed: %v", err)
	}
	if got := out.String(); got != "only\n" {
		t.Errorf("list s output = %q", got)
	}
}

func TestListCmd_Empty(t *testing.T) {
	app, out, _ := setupTestApp(t)

	if err := runCmd(newListCmd(NewTestProvider(app))); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("list on empty store = %q, want no output", out.String())
	}
}

func TestListCmd_JSON(t *testing.T) {
	app, out, _ := setupTestApp(t)
	app.JSON = true
	seedStore(t, app, "a", map[string]string{"k": "v"})

	if err := runCmd(newListCmd(NewTestProvider(app))); err != nil {
		t.Fatalf("list --json failed: %v", err)
	}
	result := decodeResult(t, out.Bytes())
	details, ok := result["details"].([]any)
	if !ok || len(details) != 1 || details[0] != "a" {
		t.Errorf("details = %v, want [a]", result["details"])
	}
}

func TestListCmd_MissingSection(t *testing.T) {
	app, _, _ := setupTestApp(t)

	err := runCmd(newListCmd(NewTestProvider(app)), "nope")
	if !errors.Is(err, ErrFailureResult) {
		t.Errorf("list nope error = %v, want ErrFailureResult", err)
	}
}
