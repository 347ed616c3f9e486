// Package console implements the interactive text menu over the user service.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"usermgr/internal/domain/entity"
	"usermgr/internal/domain/repository"
	"usermgr/internal/errors"
	"usermgr/internal/usecase"

	"github.com/mattn/go-runewidth"
)

const (
	rule          = "------------------------------------------------------------"
	digestPreview = 20
)

// errExit ends the menu loop.
var errExit = errors.New("exit")

// Menu is the numbered console menu. Every action goes through the user service.
type Menu struct {
	users     usecase.UserUsecase
	in        *bufio.Reader
	out       io.Writer
	passwords PasswordReader
}

// Option configures a Menu.
type Option func(*Menu)

// WithPasswordReader reads passwords through r instead of the plain input.
func WithPasswordReader(r PasswordReader) Option {
	return func(m *Menu) {
		m.passwords = r
	}
}

// NewMenu creates a menu reading lines from in and writing to out.
func NewMenu(users usecase.UserUsecase, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		users: users,
		in:    bufio.NewReader(in),
		out:   out,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run shows the menu until the user picks 0, the input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.printMenu()
		line, err := m.readLine()
		if err != nil {
			return ignoreEOF(err)
		}

		if err := m.dispatch(ctx, strings.TrimSpace(line)); err != nil {
			if errors.Is(err, errExit) {
				m.println("goodbye")
				return nil
			}

			return ignoreEOF(err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, option string) error {
	switch option {
	case "1":
		return m.listUsers(ctx)
	case "2":
		return m.findByID(ctx)
	case "3":
		return m.findByUsername(ctx)
	case "4":
		return m.createUser(ctx)
	case "5":
		return m.updateUser(ctx)
	case "6":
		return m.deleteUser(ctx)
	case "7":
		return m.authenticate(ctx)
	case "8":
		return m.hashPassword()
	case "0":
		return errExit
	default:
		m.println("invalid option")
		m.println("")

		return nil
	}
}

func (m *Menu) printMenu() {
	m.println(rule)
	m.println("USER MANAGEMENT")
	m.println(rule)
	m.println("1. List all users")
	m.println("2. Find user by ID")
	m.println("3. Find user by username")
	m.println("4. Create user")
	m.println("5. Update user")
	m.println("6. Delete user")
	m.println("7. Authenticate")
	m.println("8. Hash a password")
	m.println("0. Exit")
	m.println(rule)
	m.print("Choose an option: ")
}

func (m *Menu) listUsers(ctx context.Context) error {
	users, err := m.users.FindAllUsers(ctx)
	if err != nil {
		m.println("error listing users")
		m.println("")

		return nil
	}
	if len(users) == 0 {
		m.println("no users found")
		m.println("")

		return nil
	}

	m.println(row("ID", "Username", "Email", "Role", "Active"))
	m.println(rule)
	for _, u := range users {
		m.println(row(strconv.FormatInt(u.ID, 10), u.Username, u.Email, u.Role.String(), yesNo(u.Active)))
	}
	m.printf("\nTotal: %d users\n\n", len(users))

	return nil
}

func (m *Menu) findByID(ctx context.Context) error {
	id, ok, err := m.promptID("ID: ")
	if err != nil || !ok {
		return err
	}

	user, err := m.users.FindUserByID(ctx, id)
	if err != nil {
		m.reportLookup(err, fmt.Sprintf("user with ID %d not found", id))
		return nil
	}

	m.println("user found:")
	m.printUser(user)
	m.println("")

	return nil
}

func (m *Menu) findByUsername(ctx context.Context) error {
	username, err := m.prompt("Username: ")
	if err != nil {
		return err
	}

	user, err := m.users.FindUserByUsername(ctx, username)
	if err != nil {
		m.reportLookup(err, fmt.Sprintf("user '%s' not found", strings.TrimSpace(username)))
		return nil
	}

	m.println("user found:")
	m.printUser(user)
	m.println("")

	return nil
}

func (m *Menu) createUser(ctx context.Context) error {
	username, err := m.prompt("Username: ")
	if err != nil {
		return err
	}
	password, err := m.promptPassword("Password: ")
	if err != nil {
		return err
	}
	email, err := m.prompt("Email: ")
	if err != nil {
		return err
	}
	role, err := m.promptRole()
	if err != nil {
		return err
	}

	user := &entity.User{
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
	}

	result := m.users.CreateUser(ctx, user)
	m.println(result.Message())
	if result.Success() {
		m.printf("assigned ID: %d\n", user.ID)
	}
	m.println("")

	return nil
}

func (m *Menu) updateUser(ctx context.Context) error {
	id, ok, err := m.promptID("ID of the user to update: ")
	if err != nil || !ok {
		return err
	}

	current, err := m.users.FindUserByID(ctx, id)
	if err != nil {
		m.reportLookup(err, "user not found")
		return nil
	}

	m.println("current user:")
	m.printUser(current)
	m.println("enter the new values (blank keeps the current one):")

	user := current.Clone()
	if v, err := m.prompt(fmt.Sprintf("Username [%s]: ", current.Username)); err != nil {
		return err
	} else if v = strings.TrimSpace(v); v != "" {
		user.Username = v
	}
	if v, err := m.prompt(fmt.Sprintf("Email [%s]: ", current.Email)); err != nil {
		return err
	} else if v = strings.TrimSpace(v); v != "" {
		user.Email = v
	}
	if v, err := m.promptPassword("New password (blank keeps the current one): "); err != nil {
		return err
	} else if v != "" {
		user.Password = v
	}
	if v, err := m.prompt(fmt.Sprintf("Role [%s] (1-5): ", current.Role)); err != nil {
		return err
	} else if v = strings.TrimSpace(v); v != "" {
		user.Role = m.roleFromOption(v)
	}
	if v, err := m.prompt(fmt.Sprintf("Active? (y/n) [%s]: ", yesNoShort(current.Active))); err != nil {
		return err
	} else if v = strings.TrimSpace(v); v != "" {
		user.Active = strings.EqualFold(v, "y")
	}

	result := m.users.UpdateUser(ctx, user)
	m.println(result.Message())
	m.println("")

	return nil
}

func (m *Menu) deleteUser(ctx context.Context) error {
	id, ok, err := m.promptID("ID of the user to delete: ")
	if err != nil || !ok {
		return err
	}

	user, err := m.users.FindUserByID(ctx, id)
	if err != nil {
		m.reportLookup(err, "user not found")
		return nil
	}

	m.println("user to delete:")
	m.printUser(user)

	confirm, err := m.prompt("Are you sure? (y/n): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(confirm), "y") {
		m.println("operation cancelled")
		m.println("")

		return nil
	}

	result := m.users.DeleteUser(ctx, id)
	m.println(result.Message())
	m.println("")

	return nil
}

func (m *Menu) authenticate(ctx context.Context) error {
	username, err := m.prompt("Username: ")
	if err != nil {
		return err
	}
	password, err := m.promptPassword("Password: ")
	if err != nil {
		return err
	}

	result := m.users.Authenticate(ctx, username, password)
	m.println(result.Message())
	if user := result.User(); result.Success() && user != nil {
		m.printf("welcome, %s!\n", user.Username)
		m.printf("role: %s (%s)\n", user.Role, user.Role.Description())
		m.printf("email: %s\n", user.Email)
	}
	m.println("")

	return nil
}

func (m *Menu) hashPassword() error {
	password, err := m.promptPassword("Password: ")
	if err != nil {
		return err
	}

	m.println("SHA-256 digest:")
	m.println(m.users.HashPassword(password))
	m.println("")

	return nil
}

func (m *Menu) promptRole() (entity.Role, error) {
	m.println("available roles:")
	for i, r := range entity.AllRoles {
		m.printf("%d. %s (%s)\n", i+1, r, r.Description())
	}

	option, err := m.prompt(fmt.Sprintf("Choose a role (1-%d): ", len(entity.AllRoles)))
	if err != nil {
		return "", err
	}

	return m.roleFromOption(strings.TrimSpace(option)), nil
}

// roleFromOption maps 1..5 to the declared roles; anything else falls back to USER.
func (m *Menu) roleFromOption(option string) entity.Role {
	n, err := strconv.Atoi(option)
	if err != nil || n < 1 || n > len(entity.AllRoles) {
		m.println("invalid option, using USER")
		return entity.RoleUser
	}

	return entity.AllRoles[n-1]
}

func (m *Menu) promptID(label string) (int64, bool, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		m.println("invalid ID")
		m.println("")

		return 0, false, nil
	}

	return id, true, nil
}

func (m *Menu) reportLookup(err error, notFound string) {
	if errors.Is(err, repository.ErrUserNotFound) {
		m.println(notFound)
	} else {
		m.println("error looking up the user")
	}
	m.println("")
}

func (m *Menu) printUser(u *entity.User) {
	m.printf("  ID: %d\n", u.ID)
	m.printf("  Username: %s\n", u.Username)
	m.printf("  Email: %s\n", u.Email)
	m.printf("  Role: %s\n", u.Role)
	m.printf("  Active: %s\n", yesNo(u.Active))
	m.printf("  Password (digest): %s\n", runewidth.Truncate(u.Password, digestPreview, "..."))
}

func (m *Menu) prompt(label string) (string, error) {
	m.print(label)

	return m.readLine()
}

func (m *Menu) promptPassword(label string) (string, error) {
	if m.passwords == nil {
		return m.prompt(label)
	}

	return m.passwords.ReadPassword(label)
}

func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) print(s string) {
	fmt.Fprint(m.out, s)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

var columnWidths = []int{5, 20, 30, 10, 6}

func row(cols ...string) string {
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(runewidth.FillRight(runewidth.Truncate(c, columnWidths[i], "..."), columnWidths[i]))
	}

	return strings.TrimRight(b.String(), " ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

func yesNoShort(v bool) string {
	if v {
		return "y"
	}

	return "n"
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
