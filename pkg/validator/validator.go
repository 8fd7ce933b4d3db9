package validator

import (
	"net/mail"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateCreateUser(firstName, lastName, email string) ValidationErrors {
	errs := make(ValidationErrors)

	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		errs.Add("firstName", "First name is required")
	} else if len(firstName) > 100 {
		errs.Add("firstName", "First name is too long")
	}

	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		errs.Add("lastName", "Last name is required")
	} else if len(lastName) > 100 {
		errs.Add("lastName", "Last name is too long")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	return errs
}

func ValidateCreateProfile(memberTypeID, sex, country, city string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(memberTypeID) == "" {
		errs.Add("memberTypeId", "Member type is required")
	}

	if sex != "" && sex != "male" && sex != "female" {
		errs.Add("sex", "Sex must be male or female")
	}

	if len(country) > 100 {
		errs.Add("country", "Country is too long")
	}
	if len(city) > 100 {
		errs.Add("city", "City is too long")
	}

	return errs
}

func ValidateCreatePost(title, content string) ValidationErrors {
	errs := make(ValidationErrors)

	title = strings.TrimSpace(title)
	if title == "" {
		errs.Add("title", "Title is required")
	} else if len(title) > 200 {
		errs.Add("title", "Title is too long")
	}

	if strings.TrimSpace(content) == "" {
		errs.Add("content", "Content is required")
	}

	return errs
}
