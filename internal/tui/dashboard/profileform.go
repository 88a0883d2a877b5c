package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/statedeck/internal/config"
)

// SubmitSuccessMessage is the notification posted for a valid profile.
const SubmitSuccessMessage = "Form submitted successfully"

// Preferences offered by the profile form.
var Preferences = []string{"Reading", "Exercise", "Music", "Travel"}

// Profile is the validated result of the profile form.
type Profile struct {
	Name        string   `yaml:"name" validate:"required,max=64"`
	Email       string   `yaml:"email" validate:"required,email"`
	Age         int      `yaml:"age" validate:"gte=0,lte=150"`
	Preferences []string `yaml:"preferences"`
}

const (
	fieldName = iota
	fieldEmail
	fieldAge
	fieldPreferences
)

// profileForm edits a Profile. Focus moves through the three inputs and then
// the preference checkboxes.
type profileForm struct {
	inputs   [3]textinput.Model
	selected map[string]bool
	field    int
	prefIdx  int
}

func newProfileForm() profileForm {
	var inputs [3]textinput.Model
	for i, placeholder := range []string{"Jane Doe", "jane@example.com", "30"} {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder
		in.CharLimit = 64
		inputs[i] = in
	}
	inputs[fieldAge].CharLimit = 3
	inputs[fieldAge].Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return errors.New("age must be numeric")
			}
		}
		return nil
	}

	return profileForm{inputs: inputs, selected: map[string]bool{}}
}

func (f *profileForm) focus() tea.Cmd {
	return f.focusField(fieldName)
}

func (f *profileForm) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *profileForm) focusField(field int) tea.Cmd {
	f.blur()
	f.field = field
	if field < len(f.inputs) {
		return f.inputs[field].Focus()
	}
	return nil
}

// next advances focus. It reports false when focus leaves the form.
func (f *profileForm) next() (tea.Cmd, bool) {
	if f.field == fieldPreferences {
		if f.prefIdx < len(Preferences)-1 {
			f.prefIdx++
			return nil, true
		}
		f.prefIdx = 0
		f.blur()
		f.field = fieldName
		return nil, false
	}
	return f.focusField(f.field + 1), true
}

func (f *profileForm) prev() tea.Cmd {
	if f.field == fieldPreferences && f.prefIdx > 0 {
		f.prefIdx--
		return nil
	}
	if f.field == fieldName {
		return nil
	}
	return f.focusField(f.field - 1)
}

func (f *profileForm) toggleCurrent() {
	if f.field != fieldPreferences {
		return
	}
	name := Preferences[f.prefIdx]
	f.selected[name] = !f.selected[name]
}

func (f *profileForm) updateInput(msg tea.Msg) tea.Cmd {
	if f.field >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.field], cmd = f.inputs[f.field].Update(msg)
	return cmd
}

// profile returns the current field values; age is zero when empty.
func (f profileForm) profile() (Profile, error) {
	p := Profile{
		Name:  strings.TrimSpace(f.inputs[fieldName].Value()),
		Email: strings.TrimSpace(f.inputs[fieldEmail].Value()),
	}
	if raw := strings.TrimSpace(f.inputs[fieldAge].Value()); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return p, fmt.Errorf("age: %q is not a number", raw)
		}
		p.Age = age
	}
	for _, pref := range Preferences {
		if f.selected[pref] {
			p.Preferences = append(p.Preferences, pref)
		}
	}
	return p, nil
}

// submit validates the form. A nil error means the profile is acceptable.
func (f profileForm) submit() (Profile, error) {
	p, err := f.profile()
	if err != nil {
		return p, err
	}
	if err := ValidateProfile(p); err != nil {
		return p, err
	}
	return p, nil
}

func (f *profileForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.selected = map[string]bool{}
	f.prefIdx = 0
}

// ValidateProfile checks p with the shared validator and returns the first
// failure as a short, user-facing error.
func ValidateProfile(p Profile) error {
	err := config.GetValidator().Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "email":
		return fmt.Errorf("%s must be a valid email address", fe.Field())
	case "gte", "lte", "max":
		return fmt.Errorf("%s is out of range", fe.Field())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

func (f profileForm) view(st Styles, focused bool) string {
	var b strings.Builder
	b.WriteString(st.PanelTitle.Render("Profile"))
	b.WriteString("\n")

	labels := [3]string{"Name", "Email", "Age"}
	for i, in := range f.inputs {
		b.WriteString(st.Label.Render(labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString(st.Label.Render("Preferences"))
	b.WriteString("\n")
	for i, pref := range Preferences {
		cursor := "  "
		if focused && f.field == fieldPreferences && f.prefIdx == i {
			cursor = st.Cursor.Render("> ")
		}
		box := "[ ]"
		if f.selected[pref] {
			box = st.Checked.Render("[x]")
		}
		b.WriteString(cursor + box + " " + pref + "\n")
	}

	b.WriteString("\n")
	b.WriteString(st.Muted.Render("enter: submit  space: toggle  esc: back"))

	panel := st.Panel
	if focused {
		panel = st.FocusedPanel
	}
	return panel.Render(b.String())
}
