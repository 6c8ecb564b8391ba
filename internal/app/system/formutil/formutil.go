// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form is re-rendered with the
// admin's values echoed back and the messages from inputval next to the
// fields they belong to.
//
//	type notifyData struct {
//		formutil.Base
//		Subject string
//	}
//
//	data := notifyData{Subject: subject}
//	formutil.SetBase(&data.Base, r, "Send Notification", "/admin")
//	data.SetErrors(inputval.Validate(form))
//	templates.Render(w, r, "notifications_page", data)
package formutil

import (
	"net/http"

	"github.com/flatfacts/admin/internal/app/system/inputval"
	"github.com/flatfacts/admin/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	viewdata.BaseVM

	Error   string
	Success string
	Fields  map[string]string
}

// SetBase populates the embedded BaseVM from the request.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(r, title, backDefault)
}

// SetError sets the form-level error message.
func (b *Base) SetError(msg string) {
	b.Error = msg
}

// SetErrors copies a validation result: the first message becomes the
// form-level error and every message is kept per field.
func (b *Base) SetErrors(res *inputval.Result) {
	if !res.HasErrors() {
		return
	}
	b.Error = res.First()
	if b.Fields == nil {
		b.Fields = make(map[string]string, len(res.Errors))
	}
	for _, e := range res.Errors {
		if _, seen := b.Fields[e.Field]; !seen && e.Field != "" {
			b.Fields[e.Field] = e.Message
		}
	}
}

// FieldError returns the message for one field, or "". It has a value
// receiver so templates can call it on view models passed by value.
func (b Base) FieldError(field string) string {
	return b.Fields[field]
}
