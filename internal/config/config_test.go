package config

import (
	"testing"
	"time"
)

func TestGet(t *testing.T) {
	t.Setenv("BRAESS_TEST_VALUE", "  hello ")
	if got := Get("BRAESS_TEST_VALUE", "x"); got != "hello" {
		t.Fatalf("Get = %q, want hello", got)
	}

	t.Setenv("BRAESS_TEST_VALUE", "   ")
	if got := Get("BRAESS_TEST_VALUE", "x"); got != "x" {
		t.Fatalf("Get blank = %q, want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("DRIVERS", "")
	n, err := GetInt("DRIVERS", 10000)
	if err != nil || n != 10000 {
		t.Fatalf("GetInt fallback = %d, %v", n, err)
	}

	t.Setenv("DRIVERS", "42")
	n, err = GetInt("DRIVERS", 10000)
	if err != nil || n != 42 {
		t.Fatalf("GetInt = %d, %v", n, err)
	}

	t.Setenv("DRIVERS", "4.5")
	if _, err := GetInt("DRIVERS", 10000); err == nil {
		t.Fatalf("expected error for non-integer value")
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("REPORT_CACHE_TTL", "")
	d, err := GetDuration("REPORT_CACHE_TTL", time.Hour)
	if err != nil || d != time.Hour {
		t.Fatalf("GetDuration fallback = %v, %v", d, err)
	}

	t.Setenv("REPORT_CACHE_TTL", "90s")
	d, err = GetDuration("REPORT_CACHE_TTL", time.Hour)
	if err != nil || d != 90*time.Second {
		t.Fatalf("GetDuration = %v, %v", d, err)
	}

	t.Setenv("REPORT_CACHE_TTL", "soon")
	if _, err := GetDuration("REPORT_CACHE_TTL", time.Hour); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
