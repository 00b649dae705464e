package storage

import (
	"context"
	"testing"
)

func TestPublicURL(t *testing.T) {
	cases := []struct {
		base, bucket, key, want string
	}{
		{"https://cdn.kono.ru/", "menus", "/catalog/menu.yaml", "https://cdn.kono.ru/catalog/menu.yaml"},
		{"", "menus", "catalog/menu.yaml", "https://menus/catalog/menu.yaml"},
	}

	for _, tc := range cases {
		if got := PublicURL(tc.base, tc.bucket, tc.key); got != tc.want {
			t.Errorf("PublicURL(%q, %q, %q) = %q, want %q", tc.base, tc.bucket, tc.key, got, tc.want)
		}
	}
}

func TestNewR2Client_RequiresBucket(t *testing.T) {
	if _, err := NewR2Client(context.Background(), R2Config{Endpoint: "https://r2.example.com"}); err == nil {
		t.Fatal("expected error for missing bucket")
	}
}
