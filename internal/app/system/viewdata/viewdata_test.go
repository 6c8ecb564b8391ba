package viewdata_test

import (
	"net/http/httptest"
	"testing"

	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/flash"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
)

func TestNewBaseVM(t *testing.T) {
	viewdata.Init("Test Site")
	defer viewdata.Init("")

	req := httptest.NewRequest("GET", "/admin/users?page=2", nil)
	req = auth.WithTestAdmin(req, &auth.Admin{ID: "a1", Name: "", Email: "root@test.com"})
	req = req.WithContext(flash.WithMessages(req.Context(), flash.Messages{Success: "User banned."}))

	vm := viewdata.NewBaseVM(req, "User Directory", "/admin")

	if vm.SiteName != "Test Site" {
		t.Errorf("SiteName = %q", vm.SiteName)
	}
	if !vm.IsLoggedIn || vm.AdminName != "root@test.com" {
		t.Errorf("admin = %v/%q, want logged in as email", vm.IsLoggedIn, vm.AdminName)
	}
	if vm.Flash.Success != "User banned." || !vm.HasAlert() {
		t.Errorf("flash not carried: %+v", vm.Flash)
	}

	active := ""
	for _, s := range vm.Sidebar {
		for _, l := range s.Links {
			if l.Active {
				active = l.Href
			}
		}
	}
	if active != "/admin/users" {
		t.Errorf("active sidebar link = %q", active)
	}
}

func TestNewBaseVM_Anonymous(t *testing.T) {
	vm := viewdata.NewBaseVM(httptest.NewRequest("GET", "/forbidden", nil), "Forbidden", "/")
	if vm.IsLoggedIn || vm.AdminName != "" {
		t.Errorf("unexpected admin: %+v", vm)
	}
	if vm.SiteName != viewdata.DefaultSiteName {
		t.Errorf("SiteName = %q", vm.SiteName)
	}
	if vm.HasAlert() {
		t.Error("no alert expected")
	}
}
