package models

// ContactInput carries the submitted contact form.
// The same rule set applies on create and on update.
type ContactInput struct {
	Name   string `form:"name" validate:"required,max=200"`
	Email  string `form:"email" validate:"required,contains=@,max=200"`
	Number string `form:"number" validate:"max=200"`
	Image  string `form:"image" validate:"max=200"`
}

// RegistrationInput carries the sign-up form.
type RegistrationInput struct {
	Username        string `form:"username" validate:"required,max=200"`
	Email           string `form:"email" validate:"required,contains=@,max=200"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
	Image           string `form:"image" validate:"max=200"`
}

// LoginInput carries the login form.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// BookmarkInput carries the bookmark form.
type BookmarkInput struct {
	Name        string `form:"name" validate:"required,max=200"`
	URL         string `form:"url" validate:"required,max=200"`
	Description string `form:"description" validate:"max=500"`
}
