package navigation_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/flatfacts/admin/internal/app/system/navigation"
)

func TestSafeBackURL(t *testing.T) {
	tests := []struct {
		name string
		ret  string
		want string
	}{
		{"keeps list state", "/admin/users?q=ann&page=2&limit=5", "/admin/users?q=ann&page=2&limit=5"},
		{"empty uses fallback", "", "/admin/users"},
		{"absolute url rejected", "https://evil.example/admin/users", "/admin/users"},
		{"scheme relative rejected", "//evil.example/admin/users", "/admin/users"},
		{"other section rejected", "/admin/reviews?page=2", "/admin/users"},
		{"prefix lookalike rejected", "/admin/usersx", "/admin/users"},
		{"action url rejected", "/admin/users/u1/ban", "/admin/users"},
		{"detail page accepted", "/admin/users/u1", "/admin/users/u1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{"return": {tt.ret}}
			req := httptest.NewRequest("POST", "/admin/users/u1/delete", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			if got := navigation.SafeBackURL(req, navigation.UsersBackURL); got != tt.want {
				t.Errorf("SafeBackURL(%q) = %q, want %q", tt.ret, got, tt.want)
			}
		})
	}
}

func TestSidebar_MarksLongestMatch(t *testing.T) {
	active := func(path string) []string {
		var out []string
		for _, s := range navigation.Sidebar(path) {
			for _, l := range s.Links {
				if l.Active {
					out = append(out, l.Href)
				}
			}
		}
		return out
	}

	tests := []struct {
		path string
		want string
	}{
		{"/admin", "/admin"},
		{"/admin/users?page=2", "/admin/users"},
		{"/admin/users/u1", "/admin/users"},
		{"/admin/analytics", "/admin/analytics"},
		{"/admin/analytics/user-activity", "/admin/analytics/user-activity"},
	}
	for _, tt := range tests {
		got := active(tt.path)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("Sidebar(%q) active = %v, want [%s]", tt.path, got, tt.want)
		}
	}
}
