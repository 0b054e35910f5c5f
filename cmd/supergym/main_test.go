package main

import (
	"testing"
	"time"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("SUPERGYM_TEST_KEY", "")
	if value := getEnv("SUPERGYM_TEST_KEY", "fallback"); value != "fallback" {
		t.Fatalf("expected the fallback for an empty variable, got %q", value)
	}

	t.Setenv("SUPERGYM_TEST_KEY", "configured")
	if value := getEnv("SUPERGYM_TEST_KEY", "fallback"); value != "configured" {
		t.Fatalf("expected the configured value, got %q", value)
	}
}

func TestMustLoadLocation(t *testing.T) {
	if location := mustLoadLocation("UTC"); location != time.UTC {
		t.Fatalf("expected UTC, got %v", location)
	}

	location := mustLoadLocation("Europe/Athens")
	if location.String() != "Europe/Athens" {
		t.Fatalf("expected Europe/Athens, got %v", location)
	}

	if location := mustLoadLocation("Not/AZone"); location != time.UTC {
		t.Fatalf("expected a UTC fallback for an unknown zone, got %v", location)
	}
}
