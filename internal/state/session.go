package state

import "github.com/alexisbeaulieu97/statedeck/internal/ports"

// User is the signed-in account.
type User struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// UserView is the read-only view of the session slice. Current returns nil
// when nobody is logged in.
type UserView interface {
	Current() *User
	Subscribe(fn func(*User)) (unsubscribe func())
}

// UserOps is the operation set of the session slice.
type UserOps interface {
	Login(email, password string)
	Logout()
}

// Messages holds the notification texts emitted by the session slice.
type Messages struct {
	LoginSuccess string
	Logout       string
}

// DefaultMessages returns the built-in session notification texts.
func DefaultMessages() Messages {
	return Messages{
		LoginSuccess: "Logged in successfully",
		Logout:       "Logged out",
	}
}

// sessionUserID is the fixed ID assigned to every logged-in user.
const sessionUserID = 1

type sessionSlice struct {
	user        *Observable[*User]
	notify      func(message string, kind NotificationType)
	placeholder string
	messages    Messages
	obs         *observer
}

func newSessionSlice(notify func(string, NotificationType), placeholder string, messages Messages, obs *observer) *sessionSlice {
	return &sessionSlice{
		user:        NewObservable[*User](nil),
		notify:      notify,
		placeholder: placeholder,
		messages:    messages,
		obs:         obs,
	}
}

func (s *sessionSlice) Current() *User {
	return cloneUser(s.user.Value())
}

func (s *sessionSlice) Subscribe(fn func(*User)) func() {
	if fn == nil {
		return func() {}
	}
	return s.user.AddListener(func(u *User) {
		fn(cloneUser(u))
	})
}

// Login installs a new current user. The password is accepted but never
// checked or stored.
func (s *sessionSlice) Login(email, _ string) {
	s.user.Set(&User{ID: sessionUserID, Name: s.placeholder, Email: email})
	s.obs.emit(sliceUser, "login", ports.EventSessionLogin, map[string]any{
		"user_id": sessionUserID,
		"active":  true,
	})
	s.notify(s.messages.LoginSuccess, NotificationSuccess)
}

// Logout clears the current user, even when nobody is logged in.
func (s *sessionSlice) Logout() {
	s.user.Set(nil)
	s.obs.emit(sliceUser, "logout", ports.EventSessionLogout, map[string]any{
		"active": false,
	})
	s.notify(s.messages.Logout, NotificationInfo)
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	copied := *u
	return &copied
}
