package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestGetCmd_Value(t *testing.T) {
	app, out, _ := setupTestApp(t)
	seedStore(t, app, "server", map[string]string{"host": "localhost"})

	if err := runCmd(newGetCmd(NewTestProvider(app)), "server", "host"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got := out.String(); got != "localhost\n" {
		t.Errorf("get output = %q, want %q", got, "localhost\n")
	}
}

func TestGetCmd_Section(t *testing.T) {
	app, out, _ := setupTestApp(t)
	seedStore(t, app, "server", map[string]string{"port": "80", "host": "localhost"})

	if err := runCmd(newGetCmd(NewTestProvider(app)), "server"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	want := "host = localhost\nport = 80\n"
	if got := out.String(); got != want {
		t.Errorf("get output = %q, want %q", got, want)
	}
}

func TestGetCmd_MissingSection(t *testing.T) {
	app, out, errOut := setupTestApp(t)

	err := runCmd(newGetCmd(NewTestProvider(app)), "nope", "x")
	if !errors.Is(err, ErrFailureResult) {
		t.Fatalf("get error = %v, want ErrFailureResult", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty on failure, got %q", out.String())
	}
	if got := strings.TrimSpace(errOut.String()); got != "error: Section doesn't exist" {
		t.Errorf("stderr = %q", got)
	}
}

func TestGetCmd_MissingOption(t *testing.T) {
	app, _, errOut := setupTestApp(t)
	seedStore(t, app, "server", map[string]string{"host": "localhost"})

	err := runCmd(newGetCmd(NewTestProvider(app)), "server", "port")
	if !errors.Is(err, ErrFailureResult) {
		t.Fatalf("get error = %v, want ErrFailureResult", err)
	}
	if !strings.Contains(errOut.String(), "Option doesn't exist") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestGetCmd_JSON(t *testing.T) {
	app, out, _ := setupTestApp(t)
	app.JSON = true
	seedStore(t, app, "server", map[string]string{"host": "localhost", "port": "80"})

	if err := runCmd(newGetCmd(NewTestProvider(app)), "server"); err != nil {
		t.Fatalf("get --json failed: %v", err)
	}
	result := decodeResult(t, out.Bytes())
	if result["status"] != "success" {
		t.Errorf("status = %v, want success", result["status"])
	}
	details, ok := result["details"].(map[string]any)
	if !ok {
		t.Fatalf("details = %T, want object", result["details"])
	}
	if details["host"] != "localhost" || details["port"] != "80" {
		t.Errorf("details = %v", details)
	}
}

func TestGetCmd_JSON_Failure(t *testing.T) {
	app, out, _ := setupTestApp(t)
	app.JSON = true

	err := runCmd(newGetCmd(NewTestProvider(app)), "nope")
	if !errors.Is(err, ErrFailureResult) {
		t.Fatalf("get error = %v, want ErrFailureResult", err)
	}
	result := decodeResult(t, out.Bytes())
	if result["status"] != "failure" || result["details"] != "Section doesn't exist" {
		t.Errorf("result = %v", result)
	}
}

func TestGetCmd_Args(t *testing.T) {
	app, _, _ := setupTestApp(t)
	if err := runCmd(newGetCmd(NewTestProvider(app))); err == nil {
		t.Error("get with no args should fail")
	}
	if err := runCmd(newGetCmd(NewTestProvider(app)), "a", "b", "c"); err == nil {
		t.Error("get with three args should fail")
	}
}
