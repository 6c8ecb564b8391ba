// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/flatfacts/admin/internal/app/system/auth"
	"github.com/flatfacts/admin/internal/app/system/flash"
	"github.com/flatfacts/admin/internal/app/system/navigation"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is shown until Init sets the configured brand.
const DefaultSiteName = "FlatFacts Admin"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type usersPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := usersPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "User Directory", "/admin"),
//	}
type BaseVM struct {
	SiteName string

	// Admin context (from the session guard)
	IsLoggedIn bool
	AdminName  string
	AdminEmail string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	Sidebar     []navigation.Section

	// CSRF protection
	CSRFToken string

	// Flash is what the previous action left behind.
	Flash flash.Messages
	// Alert is the error for this page's own fetch.
	Alert string
}

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
)

// Init sets the brand shown in the layout. Call once at startup.
func Init(name string) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" {
		name = DefaultSiteName
	}
	siteName = name
}

// SiteName returns the configured brand.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName(),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		Sidebar:     navigation.Sidebar(r.URL.Path),
		CSRFToken:   csrf.Token(r),
		Flash:       flash.FromRequest(r),
	}
	if a, ok := auth.CurrentAdmin(r); ok {
		vm.IsLoggedIn = true
		vm.AdminName = a.DisplayName()
		vm.AdminEmail = a.Email
	}
	return vm
}

// HasAlert reports whether any message should be shown above the content.
func (vm BaseVM) HasAlert() bool {
	return vm.Alert != "" || !vm.Flash.Empty()
}
