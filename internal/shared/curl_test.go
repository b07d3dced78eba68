package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCurlCommand(t *testing.T) {
	t.Run("parses single-quoted headers", func(t *testing.T) {
		cmd := `curl 'https://music.youtube.com/youtubei/v1/browse' \
  -H 'User-Agent: Mozilla/5.0' \
  -H 'Accept: */*' \
  -H 'X-Goog-AuthUser: 0'`

		capture, err := ParseCurlCommand([]byte(cmd))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if capture.Headers["user-agent"] != "Mozilla/5.0" {
			t.Errorf("expected user-agent Mozilla/5.0, got %s", capture.Headers["user-agent"])
		}
		if capture.Headers["x-goog-authuser"] != "0" {
			t.Errorf("expected x-goog-authuser 0, got %s", capture.Headers["x-goog-authuser"])
		}
	})

	t.Run("parses double-quoted headers", func(t *testing.T) {
		cmd := `curl "https://music.youtube.com" -H "Accept: application/json"`

		capture, err := ParseCurlCommand([]byte(cmd))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if capture.Headers["accept"] != "application/json" {
			t.Errorf("expected accept application/json, got %s", capture.Headers["accept"])
		}
	})

	t.Run("extracts cookie from -b flag", func(t *testing.T) {
		cmd := `curl 'https://music.youtube.com' -b '__Secure-3PAPISID=abc123; VISITOR_INFO1_LIVE=xyz'`

		capture, err := ParseCurlCommand([]byte(cmd))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(capture.Cookie, "__Secure-3PAPISID=abc123") {
			t.Errorf("expected cookie to contain __Secure-3PAPISID, got %s", capture.Cookie)
		}
	})

	t.Run("extracts cookie from header form", func(t *testing.T) {
		cmd := `curl 'https://music.youtube.com' -H 'Cookie: SAPISID=def456; PREF=f1'`

		capture, err := ParseCurlCommand([]byte(cmd))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if capture.Cookie != "SAPISID=def456; PREF=f1" {
			t.Errorf("expected cookie from header, got %s", capture.Cookie)
		}
		if _, ok := capture.Headers["cookie"]; ok {
			t.Error("cookie should not appear in the header map")
		}
	})

	t.Run("fails when nothing is found", func(t *testing.T) {
		if _, err := ParseCurlCommand([]byte("curl https://example.com")); err == nil {
			t.Fatal("expected error for capture with no headers")
		}
	})
}

func TestParseCurlFile(t *testing.T) {
	t.Run("reads and parses a capture file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "capture.sh")

		cmd := `curl 'https://music.youtube.com' \
  -H 'User-Agent: Mozilla/5.0' \
  -b '__Secure-3PAPISID=tok'`

		if err := os.WriteFile(path, []byte(cmd), 0644); err != nil {
			t.Fatalf("failed to write capture file: %v", err)
		}

		capture, err := ParseCurlFile(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if capture.Cookie != "__Secure-3PAPISID=tok" {
			t.Errorf("unexpected cookie: %s", capture.Cookie)
		}
	})

	t.Run("fails for missing file", func(t *testing.T) {
		if _, err := ParseCurlFile("/nonexistent/capture.sh"); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
