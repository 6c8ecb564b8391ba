// internal/app/features/users/types.go
package users

import (
	"github.com/flatfacts/admin/internal/app/platform"
	"github.com/flatfacts/admin/internal/app/system/formutil"
	"github.com/flatfacts/admin/internal/app/system/listview"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
)

const (
	basePath = "/admin/users"
	tableID  = "users-table-wrap"
)

type userRow struct {
	platform.User
	Joined string
}

type listData struct {
	viewdata.BaseVM

	Q     string
	Rows  []userRow
	Pager listview.Pager
}

// editForm is the detail page's edit form.
type editForm struct {
	Name     string `validate:"notblank,max=100" label:"Name"`
	Email    string `validate:"required,email" label:"Email"`
	IsAdmin  bool
	Verified bool
}

type reviewRow struct {
	platform.UserReview
	Excerpt string
}

type viewData struct {
	formutil.Base

	User     platform.UserDetail
	Joined   string
	Reviews  []reviewRow
	Editing  bool
	Form     editForm
	Return   string
	ListURL  string
	NotFound bool
}
