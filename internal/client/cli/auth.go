package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/session"
	"github.com/dmitrijs2005/farmchainx/internal/common"
)

// register prompts for the account form. The session is not changed; the
// user logs in afterwards.
func (a *App) register(ctx context.Context, _ []string) error {
	var form models.RegisterForm
	var err error

	if form.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	form.Password, form.ConfirmPassword = string(password), string(confirm)

	if form.Phone, err = getSimpleText(a.reader, "Enter phone (optional)", a.out); err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (FARMER, DISTRIBUTOR, BUYER)", a.out)
	if err != nil {
		return err
	}
	if r, ok := models.ParseRole(role); ok {
		form.Role = r
	} else {
		form.Role = models.Role(role)
	}

	if err := form.Validate(a.strictEmail); err != nil {
		return err
	}

	res := a.store.Register(ctx, form)
	if !res.Success {
		return errors.New(res.Message)
	}
	a.ok("%s", res.Message)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	return a.signIn(ctx, args, a.store.Login)
}

func (a *App) adminLogin(ctx context.Context, args []string) error {
	return a.signIn(ctx, args, a.store.AdminLogin)
}

func (a *App) signIn(ctx context.Context, args []string, fn func(context.Context, string, string) session.Result) error {
	email, err := a.prompt(args, 0, "Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := fn(ctx, email, string(password))
	if !res.Success {
		return errors.New(res.Message)
	}
	a.ok("Welcome, %s (%s)", res.User.Name, res.User.Role)
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.ok("Logged out")
	return nil
}

func (a *App) whoami(_ context.Context, _ []string) error {
	s := a.store.Current()
	if s == nil {
		fmt.Fprintln(a.out, mutedStyle.Render("not logged in"))
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\nrole: %s\nid: %s\n", s.Name, s.Email, s.Role, s.ID)
	return nil
}
