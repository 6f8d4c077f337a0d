// Package nav names the front server's routes and the navigation ports
// presenters use to leave a page.
package nav

import "strings"

const (
	Root          = "/"
	Login         = "/login"
	Register      = "/register"
	Sessions      = "/sessions"
	SessionCreate = "/sessions/create"
	Me            = "/me"
	NotFound      = "/404"
)

func SessionDetail(id string) string {
	return Sessions + "/detail/" + id
}

func SessionUpdate(id string) string {
	return Sessions + "/update/" + id
}

// Navigator moves the user to another route.
type Navigator interface {
	Navigate(path string)
}

// Notifier shows a transient confirmation to the user.
type Notifier interface {
	Notify(message string)
}

// Recorder captures where a presenter wants to go and what it wants to
// say, so a transport can turn it into a redirect plus flash messages.
type Recorder struct {
	target   string
	messages []string
}

func (r *Recorder) Navigate(path string) {
	if path == "" {
		path = Root
	}
	r.target = path
}

func (r *Recorder) Notify(message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	r.messages = append(r.messages, message)
}

// Target is the last requested route, empty when the presenter stayed.
func (r *Recorder) Target() string {
	return r.target
}

func (r *Recorder) Navigated() bool {
	return r.target != ""
}

func (r *Recorder) Messages() []string {
	return append([]string(nil), r.messages...)
}
