package utils

import (
	"fitforge/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: FitForge <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F4F4F4; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FF6B35; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #1A1A2E; margin-top: 0; }
			.footer { background-color: #F4F4F4; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #FF6B35; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #FFF3ED; padding: 15px; border-radius: 4px; border-left: 4px solid #FF6B35; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>FITFORGE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; FitForge. Train hard, stay consistent.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendPaymentReceipt mails the payment confirmation with the gateway reference
func SendPaymentReceipt(email, name, batchTitle string, amount uint, paymentRef string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment was successful and your enrollment in <strong>%s</strong> is confirmed.</p>
		<div class="info-box">
			<p>Amount paid: <strong>Rs. %d</strong><br>
			Payment reference: <strong>%s</strong></p>
		</div>
		<p>Keep this reference for any support queries. See you in the gym!</p>`,
		name, batchTitle, amount, paymentRef)

	return SendEmail([]string{email}, "Payment Confirmed - "+batchTitle, getEmailTemplate("Enrollment Confirmed", body))
}

// SendPendingPaymentReminder nudges a user whose checkout was left unfinished
func SendPendingPaymentReminder(email, name, batchTitle string, amount uint) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You started enrolling in <strong>%s</strong> but the payment was not completed.</p>
		<div class="info-box">
			<p>Amount due: <strong>Rs. %d</strong></p>
		</div>
		<p>Your spot is still waiting. Head back to the batch page to finish checkout.</p>`,
		name, batchTitle, amount)

	return SendEmail([]string{email}, "Complete your enrollment - "+batchTitle, getEmailTemplate("Payment Pending", body))
}

// SendContactNotification forwards a contact form submission to the admin inbox
func SendContactNotification(adminEmail, name, email, mobile, message string) error {
	body := fmt.Sprintf(`
		<p>New contact form submission:</p>
		<div class="info-box">
			<p>Name: <strong>%s</strong><br>
			Email: <strong>%s</strong><br>
			Mobile: <strong>%s</strong></p>
		</div>
		<p>%s</p>`,
		name, email, mobile, message)

	return SendEmail([]string{adminEmail}, "New Contact Submission from "+name, getEmailTemplate("Contact Form", body))
}

// SendNewsletterWelcome greets a new newsletter subscriber
func SendNewsletterWelcome(email string) error {
	body := `
		<p>Thanks for subscribing to the FitForge newsletter!</p>
		<p>You will hear from us when new batches open and when we publish training content.</p>`

	return SendEmail([]string{email}, "Welcome to the FitForge Newsletter", getEmailTemplate("You're In!", body))
}
