package database

import (
	"context"
	"path/filepath"
	"testing"
)

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		url     string
		driver  string
		wantErr bool
	}{
		{"postgres://user:pw@localhost:5432/restaurant", "postgres", false},
		{"postgresql://localhost/restaurant", "postgres", false},
		{"sqlite://./data/restaurant.db", "sqlite", false},
		{"file:restaurant.db?cache=shared", "sqlite", false},
		{"mysql://root@localhost/menu", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		d, err := dialectorFor(tt.url)
		if tt.wantErr {
			if err == nil {
				t.Errorf("dialectorFor(%q): expected error", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("dialectorFor(%q) failed: %v", tt.url, err)
			continue
		}
		if d.Name() != tt.driver {
			t.Errorf("dialectorFor(%q) = %s, want %s", tt.url, d.Name(), tt.driver)
		}
	}
}

func TestInitializeSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Initialize("sqlite://"+dbPath, Options{MaxOpenConns: 4, MaxIdleConns: 2, LogLevel: "error"})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := Ping(context.Background(), db); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
	sqlDB, _ := db.DB()
	if got := sqlDB.Stats().MaxOpenConnections; got != 4 {
		t.Errorf("MaxOpenConnections: got %d, want 4", got)
	}
	sqlDB.Close()
}
