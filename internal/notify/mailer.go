package notify

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"resto-backend/internal/model"
)

// Notifier tells an employee about a new shift assignment.
type Notifier interface {
	ShiftAssigned(emp *model.Employee, shiftDate string, loc *model.RestaurantLocation) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	from   string
	dialer dialer
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{from: from, dialer: gomail.NewDialer(host, port, username, password)}
}

func (m *Mailer) ShiftAssigned(emp *model.Employee, shiftDate string, loc *model.RestaurantLocation) error {
	if emp == nil || emp.Email == "" {
		return nil
	}
	return m.dialer.DialAndSend(m.shiftMessage(emp, shiftDate, loc))
}

func (m *Mailer) shiftMessage(emp *model.Employee, shiftDate string, loc *model.RestaurantLocation) *gomail.Message {
	where := "your restaurant"
	if loc != nil && loc.Address != "" {
		where = loc.Address
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", emp.Email, emp.FullName)
	msg.SetHeader("Subject", "New shift on "+shiftDate)
	msg.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYou have been scheduled to work on %s at %s.\n", emp.FullName, shiftDate, where))
	return msg
}

// Noop drops every notification.
type Noop struct{}

func (Noop) ShiftAssigned(*model.Employee, string, *model.RestaurantLocation) error { return nil }

// Async sends in the background so a slow mail server never holds up a
// request. Failures are only logged.
type Async struct {
	next Notifier
	log  *zap.Logger
}

func NewAsync(next Notifier, log *zap.Logger) *Async {
	return &Async{next: next, log: log}
}

func (a *Async) ShiftAssigned(emp *model.Employee, shiftDate string, loc *model.RestaurantLocation) error {
	go func() {
		if err := a.next.ShiftAssigned(emp, shiftDate, loc); err != nil {
			a.log.Warn("shift notification failed", zap.Error(err), zap.String("shift_date", shiftDate))
		}
	}()
	return nil
}
