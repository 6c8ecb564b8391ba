package reviews

import (
	"testing"

	"github.com/flatfacts/admin/internal/app/platform"
)

func TestValidRating(t *testing.T) {
	for _, s := range []string{"", "1", "3", "5"} {
		if !validRating(s) {
			t.Errorf("validRating(%q) = false", s)
		}
	}
	for _, s := range []string{"0", "6", "x", "-1", "4.5"} {
		if validRating(s) {
			t.Errorf("validRating(%q) = true", s)
		}
	}
}

func TestRatingOptions(t *testing.T) {
	opts := ratingOptions("3")
	if len(opts) != 6 {
		t.Fatalf("got %d options, want 6", len(opts))
	}
	for _, o := range opts {
		if o.Selected != (o.Value == "3") {
			t.Errorf("option %q selected = %v", o.Value, o.Selected)
		}
	}
	if opts[1].Label != "1 Star" || opts[2].Label != "2 Stars" {
		t.Errorf("labels = %q, %q", opts[1].Label, opts[2].Label)
	}
}

func TestAuthor(t *testing.T) {
	tests := []struct {
		name string
		rv   platform.Review
		want string
	}{
		{"anonymous hides user", platform.Review{IsAnonymous: true, User: &platform.UserRef{Name: "Ann"}}, "Anonymous"},
		{"user name", platform.Review{User: &platform.UserRef{Name: "Ann", Email: "ann@example.com"}}, "Ann"},
		{"user email", platform.Review{User: &platform.UserRef{Email: "ann@example.com"}}, "ann@example.com"},
		{"display name", platform.Review{UserName: "annie"}, "annie"},
		{"nothing", platform.Review{}, "Unknown"},
	}
	for _, tt := range tests {
		if got := author(tt.rv); got != tt.want {
			t.Errorf("%s: author = %q, want %q", tt.name, got, tt.want)
		}
	}
}
