package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/sirupsen/logrus"

	models "denku.com/billing/models"
)

// DispatchEmail sends an owner-facing notification through Mailgun. Billing
// state never depends on the outcome; callers log and move on.
func DispatchEmail(subject string, body string, user *models.User, workspace *models.Workspace) error {
	domain := Config("MAILGUN_DOMAIN")
	apiKey := Config("MAILGUN_API_KEY")
	if domain == "" || apiKey == "" {
		Log(logrus.InfoLevel, "mailgun is not configured, skipping email to "+user.Email)
		return nil
	}

	mg := mailgun.NewMailgun(domain, apiKey)
	sender := fmt.Sprintf("Denku Billing <no-reply@%s>", domain)
	m := mg.NewMessage(sender, subject, body, user.Email)
	m.AddHeader("X-Denku-Workspace", fmt.Sprintf("%d", workspace.Id))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, _, err := mg.Send(ctx, m)
	return err
}
