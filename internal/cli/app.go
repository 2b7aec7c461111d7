package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/spec-kit/pizza-store/internal/auth"
	"github.com/spec-kit/pizza-store/internal/service"
)

// App drives the interactive menu session. Exactly one logical actor
// runs at a time; every storage call is synchronous and every menu
// action recovers at its own boundary, so a failed operation never
// ends the loop.
type App struct {
	authSvc    *service.AuthService
	profileSvc *service.ProfileService
	menuSvc    *service.MenuService
	orderSvc   *service.OrderService
	logger     *zap.Logger

	reader  *bufio.Reader
	out     io.Writer
	session *auth.Session
}

// Dependencies collects the services the app dispatches to.
type Dependencies struct {
	Auth    *service.AuthService
	Profile *service.ProfileService
	Menu    *service.MenuService
	Orders  *service.OrderService
}

// NewApp builds the interactive app reading from stdin.
func NewApp(deps Dependencies, logger *zap.Logger) *App {
	return &App{
		authSvc:    deps.Auth,
		profileSvc: deps.Profile,
		menuSvc:    deps.Menu,
		orderSvc:   deps.Orders,
		logger:     logger,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

// Run executes the top-level menu loop until the user exits or the
// context is canceled.
func (a *App) Run(ctx context.Context) error {
	a.greeting()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintln(a.out, "MAIN MENU")
		fmt.Fprintln(a.out, "---------")
		fmt.Fprintln(a.out, "1. Create user")
		fmt.Fprintln(a.out, "2. Log in")
		fmt.Fprintln(a.out, "9. < EXIT")

		choice, err := ReadChoice(a.reader, a.out)
		if err != nil {
			return nil // EOF on stdin ends the run
		}

		switch choice {
		case 1:
			a.createUser(ctx)
		case 2:
			if a.login(ctx) {
				if err := a.sessionLoop(ctx); err != nil {
					return err
				}
			}
		case 9:
			fmt.Fprintln(a.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Unrecognized choice!")
		}
	}
}

func (a *App) greeting() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "*******************************************************")
	fmt.Fprintln(a.out, "              Pizza Store User Interface")
	fmt.Fprintln(a.out, "*******************************************************")
	fmt.Fprintln(a.out)
}

func (a *App) createUser(ctx context.Context) {
	login, err := ReadLine(a.reader, "Enter username: ", a.out)
	if err != nil {
		return
	}
	password, err := ReadPassword(a.reader, "Enter password: ", a.out)
	if err != nil {
		return
	}
	phoneNum, err := ReadLine(a.reader, "Enter phone number: ", a.out)
	if err != nil {
		return
	}

	if _, err := a.authSvc.Register(ctx, login, password, phoneNum); err != nil {
		a.reportError(err, "Error - Unable to create user")
		return
	}
	fmt.Fprintln(a.out, "User created successfully!")
}

// login returns true when a session was established.
func (a *App) login(ctx context.Context) bool {
	login, err := ReadLine(a.reader, "Enter username: ", a.out)
	if err != nil {
		return false
	}
	password, err := ReadPassword(a.reader, "Enter password: ", a.out)
	if err != nil {
		return false
	}

	sess, err := a.authSvc.Login(ctx, login, password)
	if err != nil {
		a.reportError(err, "Invalid username or password")
		return false
	}

	a.session = sess
	fmt.Fprintln(a.out, "Logged in successfully!")
	return true
}

func (a *App) logout() {
	if a.session != nil {
		a.logger.Info("session ended", zap.String("session", a.session.ID))
	}
	a.session = nil
}

// reportError prints a user-facing message for err. Domain errors
// carry their own wording; anything else gets the fallback so storage
// details never reach the menu.
func (a *App) reportError(err error, fallback string) {
	if err == nil {
		return
	}
	fmt.Fprintln(a.out, userMessage(err, fallback))
}
