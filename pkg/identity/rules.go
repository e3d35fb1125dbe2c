package identity

import (
	validation "github.com/jellydator/validation"
)

// NationalIDRule adapts ValidateNationalID for use with validation.Validate and validation.Field.
// Empty strings pass, leave them to validation.Required.
var NationalIDRule = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_national_id_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	return resultError("validation_national_id", ValidateNationalID(s))
})

// PasswordRule adapts ValidatePassword for use with validation.Validate and validation.Field.
var PasswordRule = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	return resultError("validation_password", ValidatePassword(s))
})

// InstitutionalEmailRule adapts ValidateInstitutionalEmail for the given domains.
func InstitutionalEmailRule(domains ...string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_email_type", "must be a string")
		}
		if s == "" {
			return nil
		}
		return resultError("validation_institutional_email", ValidateInstitutionalEmail(s, domains...).Result)
	})
}

func resultError(code string, res Result) error {
	if res.IsValid {
		return nil
	}
	return validation.NewError(code, res.Message)
}

// Registration is the data submitted by the user registration form.
type Registration struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// Validate checks every field, reporting all failing fields at once as validation.Errors.
func (r *Registration) Validate(domains ...string) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.NationalID, validation.Required, NationalIDRule),
		validation.Field(&r.Email, validation.Required, InstitutionalEmailRule(domains...)),
		validation.Field(&r.Password, validation.Required, PasswordRule),
		validation.Field(&r.Role, validation.Required, validation.In(RoleAdmin, RoleSecretary, RoleTeacher, RoleViewer)),
	)
}

// FullName joins the trimmed first and last names.
func (r *Registration) FullName() string {
	return trimJoin(r.FirstName, r.LastName)
}
