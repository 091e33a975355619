// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package mail

import (
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer delivers transactional mail over plain SMTP. Delivery runs on
// the caller's goroutine; callers that do not want to block on the SMTP
// round trip send from their own goroutine.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "no-reply@worknest.dev"
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	return m.dialer.DialAndSend(msg)
}
