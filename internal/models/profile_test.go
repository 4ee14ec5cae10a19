package models

import "testing"

func TestProfileIsAdmin(t *testing.T) {
	var nilProfile *Profile
	if nilProfile.IsAdmin() {
		t.Error("nil profile reported admin")
	}

	for _, role := range []string{RoleViewer, RoleEditor, RoleGuest, RoleClient, ""} {
		p := &Profile{Role: role}
		if p.IsAdmin() {
			t.Errorf("role %q reported admin", role)
		}
	}

	if !(&Profile{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin role not recognized")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleViewer, RoleEditor, RoleGuest, RoleClient} {
		if !ValidRole(role) {
			t.Errorf("%q rejected", role)
		}
	}
	if ValidRole("superuser") {
		t.Error("superuser accepted")
	}
}

func TestValidCategory(t *testing.T) {
	for _, category := range []string{CategoryVideo, CategoryPhotography, CategoryWebApp, CategoryMarketing} {
		if !ValidCategory(category) {
			t.Errorf("%q rejected", category)
		}
	}
	if ValidCategory("Music") {
		t.Error("Music accepted")
	}
}
