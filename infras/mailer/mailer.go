package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"

	"salama/config"
	"salama/infras/otel"
	"salama/shared/constant"
)

const (
	otelAttrRecipients = "recipients"
	otelAttrSubject    = "subject"
)

type Email struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

type Mailer interface {
	Send(ctx context.Context, email Email) (id string, err error)
}

type resendMailer struct {
	client *resend.Client
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &resendMailer{
		client: resend.NewClient(config.External.Resend.APIKey),
		config: config,
		otel:   otel,
	}
}

func (m *resendMailer) Send(ctx context.Context, email Email) (id string, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipients: len(email.To),
		otelAttrSubject:    email.Subject,
	})

	from := fmt.Sprintf("%s <%s>", m.config.External.Resend.FromName, m.config.External.Resend.FromAddress)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	}

	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Error().Err(err).Str("subject", email.Subject).Msg("failed to send email")

		return constant.Empty, fmt.Errorf("failed to send email: %w", err)
	}

	return sent.Id, nil
}
