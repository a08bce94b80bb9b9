package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesEnvFile(t *testing.T) {
	saved := Session
	savedServer := Server
	t.Cleanup(func() {
		Session = saved
		Server = savedServer
	})

	path := filepath.Join(t.TempDir(), ".env")
	body := "GRAPPLE_MAX_CABLE_LENGTH=4000\nGRAPPLE_TEARING_DISTANCE=800\nGRAPPLE_TICK_RATE=20\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{EnvMaxCableLength, EnvTearingDistance, EnvTickRate} {
		k := k
		old, had := os.LookupEnv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			} else {
				os.Unsetenv(k)
			}
		})
		os.Unsetenv(k)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Session.MaxCableLength != 4000 || Session.TearingDistance != 800 {
		t.Fatalf("session = %+v", Session)
	}
	if Server.TickRate != 20 {
		t.Fatalf("tick rate = %d, want 20", Server.TickRate)
	}

	var s SessionSettings
	if s.MaxCableLength() != 4000 || s.TearingDistance() != 800 {
		t.Fatal("SessionSettings must read the loaded values")
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadRejectsMalformedNumber(t *testing.T) {
	saved := Session
	t.Cleanup(func() { Session = saved })
	t.Setenv(EnvMaxCableLength, "far")
	if err := Load(""); err == nil {
		t.Fatal("expected parse error")
	}
}
