package model

// Field describes how one input is presented.
type Field struct {
	Name        FieldName `json:"name"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder"`
	// Secret inputs are masked and never echoed back by renderers.
	Secret bool `json:"secret"`
}

// InputType returns the HTML input type for the field.
func (f Field) InputType() string {
	if f.Secret {
		return "password"
	}
	return "text"
}

// Fields returns the form inputs in display order.
func Fields() []Field {
	return []Field{
		{Name: FieldUsername, Label: "Username", Placeholder: "Enter your username"},
		{Name: FieldCurrentPassword, Label: "Current Password", Placeholder: "Enter your current password", Secret: true},
		{Name: FieldNewPassword, Label: "New Password", Placeholder: "Enter your new password", Secret: true},
		{Name: FieldConfirmPassword, Label: "Confirm New Password", Placeholder: "Confirm your new password", Secret: true},
	}
}
