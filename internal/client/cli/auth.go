package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var roleOptions = []string{models.RoleAdmin.Title(), models.RoleExecutive.Title()}

func (a *App) askRole() (models.Role, error) {
	choice, err := GetChoice(a.reader, "Login as", roleOptions, roleOptions[0], a.out)
	if err != nil {
		return "", err
	}
	return models.ParseRole(choice)
}

// Login asks for a role, email and password and opens a session.
func (a *App) Login(ctx context.Context) error {
	role, err := a.askRole()
	if err != nil {
		return a.report(ctx, err)
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, role, email, string(password)); err != nil {
		return a.report(ctx, err)
	}

	a.forget(ctx)
	fmt.Fprintf(a.out, "Logged in as %s.\n", role.Title())
	return nil
}

// Signup creates an account. Executives additionally pick a designation;
// it does not log the new account in.
func (a *App) Signup(ctx context.Context) error {
	role, err := a.askRole()
	if err != nil {
		return a.report(ctx, err)
	}

	var req models.SignupRequest
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter name", &req.Name},
		{"Enter email", &req.Email},
		{"Enter mobile", &req.Mobile},
	} {
		if *f.dst, err = getSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	req.Password = string(password)

	if role == models.RoleExecutive {
		if req.Designation, err = GetChoice(a.reader, "Designation", designationOptions(), "Executive", a.out); err != nil {
			return a.report(ctx, err)
		}
	}

	if err := a.auth.Signup(ctx, role, req); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Account created. You can log in now.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.forget(ctx)
	if err := a.auth.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
