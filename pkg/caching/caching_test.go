package caching

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, ok := c.Get("https://example.com"); ok {
		t.Fatal("Get() hit on empty cache")
	}
	if err := c.Put("https://example.com", []byte("<html></html>")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	data, ok := c.Get("https://example.com")
	if !ok {
		t.Fatal("Get() miss after Put()")
	}
	if string(data) != "<html></html>" {
		t.Errorf("Get() = %q", data)
	}
	if _, ok := c.Get("https://example.org"); ok {
		t.Error("Get() hit for a different URL")
	}
}

func TestCacheExpiry(t *testing.T) {
	c, err := New(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := c.Put("https://example.com", []byte("x")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	c.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, ok := c.Get("https://example.com"); ok {
		t.Error("Get() returned an expired entry")
	}
}

func TestCacheZeroTTLAlwaysMisses(t *testing.T) {
	c, err := New(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := c.Put("https://example.com", []byte("x")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if _, ok := c.Get("https://example.com"); ok {
		t.Error("Get() hit with zero TTL")
	}
}

func TestNewRequiresDir(t *testing.T) {
	if _, err := New("", time.Hour); err == nil {
		t.Error("New(\"\") error = nil, want error")
	}
}
