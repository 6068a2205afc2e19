package model

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want UserRole
	}{
		{"learner", Learner},
		{"Learner", Learner},
		{"content_creator", ContentCreator},
		{"contentCreator", ContentCreator},
		{"Content Creator", ContentCreator},
		{"creator", ContentCreator},
		{"administrator", Administrator},
		{"Admin", Administrator},
		{"", Learner},
		{"superuser", Learner}, // unknown roles never grant anything
	}

	for _, c := range cases {
		if got := ParseRole(c.in); got != c.want {
			t.Errorf("ParseRole(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseRoleStrict(t *testing.T) {
	for _, in := range []string{"learner", "content_creator", "administrator", " Administrator "} {
		role, ok := ParseRoleStrict(in)
		if !ok {
			t.Errorf("ParseRoleStrict(%q) rejected a canonical spelling", in)
		}
		if !role.Valid() {
			t.Errorf("ParseRoleStrict(%q) = %q, which is not a valid role", in, role)
		}
	}

	// Aliases and typos are only for the lenient parser; here they must fail
	// rather than resolve to anything.
	for _, in := range []string{"admin", "creator", "Content Creator", "adminstrator", "superuser", ""} {
		if role, ok := ParseRoleStrict(in); ok {
			t.Errorf("ParseRoleStrict(%q) = %q, want rejection", in, role)
		}
	}
}

func TestUserRoleValid(t *testing.T) {
	for _, role := range []UserRole{Learner, ContentCreator, Administrator} {
		if !role.Valid() {
			t.Errorf("%q.Valid() = false, want true", role)
		}
	}
	if UserRole("owner").Valid() {
		t.Error(`UserRole("owner").Valid() = true, want false`)
	}
}
