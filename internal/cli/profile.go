package cli

import (
	"context"
	"fmt"

	"github.com/spec-kit/pizza-store/internal/auth"
	"github.com/spec-kit/pizza-store/internal/domain"
)

func (a *App) viewProfile(ctx context.Context) {
	login, err := ReadLine(a.reader, "Enter username: ", a.out)
	if err != nil {
		return
	}

	user, err := a.profileSvc.View(ctx, login)
	if err != nil {
		a.reportError(err, "Error: Unable to retrieve profile.")
		return
	}

	favorites := "NULL"
	if user.FavoriteItems != nil {
		favorites = *user.FavoriteItems
	}
	fmt.Fprintln(a.out, "Username: "+user.Login)
	fmt.Fprintln(a.out, "Phone Number: "+user.PhoneNum)
	fmt.Fprintln(a.out, "Role: "+string(user.Role))
	fmt.Fprintln(a.out, "Favorite Items: "+favorites)
}

// updateProfile edits the caller's own record; managers may pick any
// target. Which fields are offered follows the mutation policy, and
// the service enforces the same policy again before storage.
func (a *App) updateProfile(ctx context.Context) {
	target := a.session.Login
	if a.session.Role.IsManager() {
		picked, err := ReadLine(a.reader, "Enter login to be updated: ", a.out)
		if err != nil {
			return
		}
		target = picked
	}
	a.editFields(ctx, target)
}

// updateUser is the manager menu entry for editing any account. The
// policy refuses it for everyone else.
func (a *App) updateUser(ctx context.Context) {
	target, err := ReadLine(a.reader, "Enter login to be updated: ", a.out)
	if err != nil {
		return
	}
	a.editFields(ctx, target)
}

var fieldLabels = map[domain.UserField]string{
	domain.FieldPhoneNum:      "Phone Number",
	domain.FieldPassword:      "Password",
	domain.FieldFavoriteItems: "Favorite Items",
	domain.FieldLogin:         "Login",
	domain.FieldRole:          "Role",
}

var fieldPrompts = map[domain.UserField]string{
	domain.FieldPhoneNum:      "Enter new phone number: ",
	domain.FieldPassword:      "Enter new password: ",
	domain.FieldFavoriteItems: "Enter new favorite items: ",
	domain.FieldLogin:         "Enter new login: ",
	domain.FieldRole:          "Enter new role: ",
}

func (a *App) editFields(ctx context.Context, target string) {
	fields := auth.MutableFields(a.session.Role, a.session.IsSelf(target))
	if len(fields) == 0 {
		fmt.Fprintln(a.out, "You may only update your own profile.")
		return
	}

	fmt.Fprintln(a.out, "What would you like to update?")
	for i, field := range fields {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, fieldLabels[field])
	}

	choice, err := ReadChoice(a.reader, a.out)
	if err != nil {
		return
	}
	if choice < 1 || choice > len(fields) {
		fmt.Fprintln(a.out, "Invalid choice")
		return
	}
	field := fields[choice-1]

	value, err := ReadLine(a.reader, fieldPrompts[field], a.out)
	if err != nil {
		return
	}

	if err := a.profileSvc.UpdateField(ctx, a.session, target, field, value); err != nil {
		a.reportError(err, "Error: Unable to update profile.")
		return
	}
	fmt.Fprintln(a.out, "Profile updated successfully!")

	// Renaming your own account would orphan the session identity.
	if a.session.IsSelf(target) && field == domain.FieldLogin {
		a.session.Login = value
	}
}
