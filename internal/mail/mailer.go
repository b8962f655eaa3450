package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	gomail "github.com/wneessen/go-mail"
)

// Message is a rendered outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message to the relay. A failed send is not
// persisted or retried anywhere.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// contactTemplate mirrors the storefront's contact notification.
// Interpolated fields are HTML-escaped by html/template.
var contactTemplate = template.Must(template.New("contact").Parse(`
	<h2>New contact message received</h2>
	<p><strong>Name:</strong> {{.Name}}</p>
	<p><strong>Email:</strong> {{.Email}}</p>
	<p><strong>Phone:</strong> {{.Phone}}</p>
	<p><strong>Message:</strong></p>
	<p>{{.Message}}</p>
	<hr>
	<p><em>Message sent from the Push'Agri Farm website</em></p>
`))

// ContactMessage renders the contact-form notification addressed from
// the service account to the configured destination.
func ContactMessage(from, to, name, email, phone, message string) (Message, error) {
	var buf bytes.Buffer
	err := contactTemplate.Execute(&buf, struct {
		Name, Email, Phone, Message string
	}{name, email, phone, message})
	if err != nil {
		return Message{}, fmt.Errorf("render contact message: %w", err)
	}
	return Message{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("New contact message - %s", name),
		HTML:    buf.String(),
	}, nil
}

// SMTPSender delivers messages through an authenticated SMTP relay.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPSender configures a sender for the given relay account.
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{host: host, port: port, username: username, password: password}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
