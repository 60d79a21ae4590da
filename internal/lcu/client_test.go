package lcu

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLockfileContent(t *testing.T) {
	creds, err := parseLockfileContent("LeagueClient:12345:54321:secret:https")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if creds.Port != "54321" {
		t.Errorf("port = %q, want 54321", creds.Port)
	}
	if creds.Password != "secret" {
		t.Errorf("password = %q, want secret", creds.Password)
	}
	if creds.Protocol != "https" {
		t.Errorf("protocol = %q, want https", creds.Protocol)
	}
}

func TestParseLockfileContent_TrailingNewline(t *testing.T) {
	creds, err := parseLockfileContent("LeagueClient:12345:54321:secret:https\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if creds.Protocol != "https" {
		t.Errorf("protocol = %q, want https", creds.Protocol)
	}
}

func TestParseLockfileContent_Invalid(t *testing.T) {
	for _, content := range []string{"", "just-some-text", "a:b:c"} {
		if _, err := parseLockfileContent(content); err == nil {
			t.Errorf("parseLockfileContent(%q) should fail", content)
		}
	}
}

func TestParseLockfile_MissingFile(t *testing.T) {
	if _, err := ParseLockfile(filepath.Join(t.TempDir(), "lockfile")); err == nil {
		t.Error("expected error for missing lockfile")
	}
}

func TestGet_NotConnected(t *testing.T) {
	c := NewClient("")
	if _, err := c.Get("/lol-gameflow/v1/gameflow-phase"); !errors.Is(err, ErrLeagueNotRunning) {
		t.Errorf("error = %v, want ErrLeagueNotRunning", err)
	}
}

// fakeLCU spins up a TLS server mimicking the LCU API and writes a
// matching lockfile, returning a client pointed at it.
func fakeLCU(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	ts := httptest.NewTLSServer(handler)
	t.Cleanup(ts.Close)

	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatalf("failed to parse test server URL: %v", err)
	}

	lockfile := filepath.Join(t.TempDir(), "lockfile")
	content := fmt.Sprintf("LeagueClient:999:%s:testtoken:https", u.Port())
	if err := os.WriteFile(lockfile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write lockfile: %v", err)
	}

	return NewClient(lockfile)
}

func TestConnect_AgainstFakeLCU(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/lol-summoner/v1/current-summoner", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"displayName":"TestSummoner","puuid":"puuid-123"}`)
	})
	mux.HandleFunc("/lol-gameflow/v1/gameflow-phase", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `"ChampSelect"`)
	})

	c := fakeLCU(t, mux)
	if err := c.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	summoner, err := c.GetCurrentSummoner()
	if err != nil {
		t.Fatalf("GetCurrentSummoner failed: %v", err)
	}
	if summoner.Name() != "TestSummoner" || summoner.PUUID != "puuid-123" {
		t.Errorf("summoner = %+v", summoner)
	}

	phase, err := c.GetGameflowPhase()
	if err != nil {
		t.Fatalf("GetGameflowPhase failed: %v", err)
	}
	if phase != "ChampSelect" {
		t.Errorf("phase = %q, want ChampSelect", phase)
	}

	c.Disconnect()
	if c.GetCredentials() != nil {
		t.Error("credentials should be cleared after disconnect")
	}
}

func TestConnect_RefusedWhenSummonerEndpointFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	c := fakeLCU(t, mux)
	if err := c.Connect(); err == nil {
		t.Fatal("Connect should fail when the client is not ready")
	}
	if c.GetCredentials() != nil {
		t.Error("credentials should not be kept after a failed connect")
	}
}
