package validators

import "testing"

func TestEmailDomain(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"juan@example.com", "example.com"},
		{"con@arroba@example.com", "example.com"},
		{"sinarroba", ""},
		{"termina@", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := emailDomain(tc.email); got != tc.want {
			t.Errorf("emailDomain(%q) = %q, want %q", tc.email, got, tc.want)
		}
	}
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	// Sin dominio no hay nada que resolver
	for _, email := range []string{"", "sinarroba", "termina@"} {
		if IsEmailDomainValid(email) {
			t.Errorf("IsEmailDomainValid(%q) = true", email)
		}
	}
}
