package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginForm collects the credentials handed to UserOps.Login.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
}

// credentials is a submitted login.
type credentials struct {
	Email    string
	Password string
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = "user@example.com"
	email.CharLimit = 254

	password := textinput.New()
	password.Prompt = ""
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	return loginForm{email: email, password: password}
}

func (f loginForm) open() (loginForm, tea.Cmd) {
	f.email.Reset()
	f.password.Reset()
	f.focus = 0
	f.password.Blur()
	cmd := f.email.Focus()
	return f, cmd
}

// update handles a key while the prompt is open. submitted is non-nil when
// enter was pressed on the password field.
func (f loginForm) update(msg tea.KeyMsg) (loginForm, tea.Cmd, *credentials) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		return f.switchField(), nil, nil
	case "enter":
		if f.focus == 0 {
			return f.switchField(), nil, nil
		}
		return f, nil, &credentials{
			Email:    strings.TrimSpace(f.email.Value()),
			Password: f.password.Value(),
		}
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.email, cmd = f.email.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd, nil
}

func (f loginForm) switchField() loginForm {
	if f.focus == 0 {
		f.focus = 1
		f.email.Blur()
		f.password.Focus()
	} else {
		f.focus = 0
		f.password.Blur()
		f.email.Focus()
	}
	return f
}

func (f loginForm) view(st Styles) string {
	var b strings.Builder
	b.WriteString(st.PanelTitle.Render("Log in"))
	b.WriteString("\n")
	b.WriteString(st.Label.Render("Email") + f.email.View() + "\n")
	b.WriteString(st.Label.Render("Password") + f.password.View() + "\n\n")
	b.WriteString(st.Muted.Render("enter: submit  tab: switch field  esc: cancel"))
	return st.Modal.Render(b.String())
}
