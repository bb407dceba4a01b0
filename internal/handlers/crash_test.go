package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func countCritical(lines []string) int {
	n := 0
	for _, line := range lines {
		if strings.Contains(line, " - CRITICAL - Application crash initiated due to division by zero!") {
			n++
		}
	}
	return n
}

func TestCrashCaught(t *testing.T) {
	t.Parallel()

	router, out, _ := newTestRouter()
	rec := doGet(router, "/crash/")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want 500", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != crashCaughtBody {
		t.Errorf("Body = %q, want %q", body, crashCaughtBody)
	}

	lines := out.Lines()
	if len(lines) != 1 {
		t.Fatalf("Sink recorded %d lines, want exactly 1: %v", len(lines), lines)
	}
	if countCritical(lines) != 1 {
		t.Errorf("Expected one critical crash line, got: %v", lines)
	}
}

func TestCrashCaughtHandleVariants(t *testing.T) {
	t.Parallel()

	// Anything outside the propagate set is caught, including values
	// that look affirmative
	handles := []string{"true", "yes", "y", "t", "handled", "FALSEHOOD"}

	for _, handle := range handles {
		t.Run(handle, func(t *testing.T) {
			router, out, _ := newTestRouter()
			rec := doGet(router, "/crash/"+handle)

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("Status = %d, want 500", rec.Code)
			}
			if body := strings.TrimSpace(rec.Body.String()); body != crashCaughtBody {
				t.Errorf("Body = %q, want %q", body, crashCaughtBody)
			}
			if countCritical(out.Lines()) != 1 {
				t.Errorf("Expected one critical line, got: %v", out.Lines())
			}
		})
	}
}

func TestCrashPropagates(t *testing.T) {
	t.Parallel()

	// Upper-case forms exercise the case-insensitive handle check
	handles := []string{"false", "f", "no", "n", "fail", "FAIL", "No"}

	for _, handle := range handles {
		t.Run(handle, func(t *testing.T) {
			router, out, _ := newTestRouter()

			panicked := false
			func() {
				defer func() {
					if rec := recover(); rec != nil {
						panicked = true
					}
				}()
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, httptest.NewRequest("GET", "/crash/"+handle, nil))
			}()

			if !panicked {
				t.Fatal("Expected the division fault to propagate")
			}
			// The critical line is emitted before re-raising
			if countCritical(out.Lines()) != 1 {
				t.Errorf("Expected one critical line before propagation, got: %v", out.Lines())
			}
		})
	}
}

func TestCrashPropagationIsolatedPerRequest(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter()

	func() {
		defer func() { _ = recover() }()
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/crash/fail", nil))
	}()

	// The router must still serve subsequent requests
	rec := doGet(router, "/info/after-crash/")
	if rec.Code != http.StatusOK {
		t.Errorf("Status = %d after a propagated crash, want 200", rec.Code)
	}
}

func TestCrashMissingTrailingSlashRedirects(t *testing.T) {
	t.Parallel()

	router, out, _ := newTestRouter()
	rec := doGet(router, "/crash")

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("Status = %d, want 301", rec.Code)
	}
	if len(out.Lines()) != 0 {
		t.Errorf("Redirect emitted lines: %v", out.Lines())
	}
}
