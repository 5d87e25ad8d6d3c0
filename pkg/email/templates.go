package email

import (
	"fmt"
	"strings"
)

// ShipmentEmailData contains the data needed for shipment email templates.
type ShipmentEmailData struct {
	RecipientName string
	Email         string
	ShipmentID    string
	Status        string
	AppName       string
}

// BuildStatusUpdateEmail creates a status-change notification for the client.
func BuildStatusUpdateEmail(data ShipmentEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Wasel"
	}

	name := data.RecipientName
	if name == "" {
		name = "there"
	}

	status := humanStatus(data.Status)
	subject := fmt.Sprintf("Shipment %s is now %s", data.ShipmentID, status)

	textBody := fmt.Sprintf(`Hi %s,

Your shipment %s has a new status: %s.

Track it any time from your %s dashboard.

Thanks,
The %s Team`,
		name, data.ShipmentID, status, appName, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your shipment <strong>%s</strong> has a new status:</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-size: 16px;">%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.ShipmentID, status, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPayoutDecisionEmail creates an approve/decline notice for a payout.
func BuildPayoutDecisionEmail(to, name, appName string, approved bool, amount float64) Message {
	if appName == "" {
		appName = "Wasel"
	}
	if name == "" {
		name = "there"
	}

	decision := "approved"
	if !approved {
		decision = "declined"
	}

	subject := fmt.Sprintf("Your withdrawal request was %s", decision)
	textBody := fmt.Sprintf(`Hi %s,

Your withdrawal request of %.2f has been %s.

Thanks,
The %s Team`, name, amount, decision, appName)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
	}
}

func humanStatus(status string) string {
	s := strings.ReplaceAll(status, "_", " ")
	if s == "" {
		return "updated"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
