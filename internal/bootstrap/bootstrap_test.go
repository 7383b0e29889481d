package bootstrap

import "testing"

func TestUploadsRoute(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: "/uploads"},
		{in: "/uploads", want: "/uploads"},
		{in: "/static/files/", want: "/static/files"},
		{in: "http://localhost:8080/uploads", want: "/uploads"},
		{in: "https://cdn.example.com", want: "/uploads"},
		{in: "https://cdn.example.com/media/", want: "/media"},
	}
	for _, c := range cases {
		if got := uploadsRoute(c.in); got != c.want {
			t.Errorf("uploadsRoute(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
