// File: /services/email_service.go
package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"gopkg.in/gomail.v2"
	"wanderly-api/config"
)

// EmailService sends registration verification codes. Codes live in memory
// and expire after ten minutes.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer

	verificationCodes map[string]VerificationCode
	mutex             sync.RWMutex
}

type VerificationCode struct {
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	service := &EmailService{
		config:            cfg,
		dialer:            dialer,
		verificationCodes: make(map[string]VerificationCode),
	}

	go service.cleanupExpiredCodes()

	return service
}

func (es *EmailService) generateVerificationCode() string {
	const digits = "0123456789"
	code := make([]byte, 6)

	for i := range code {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		code[i] = digits[num.Int64()]
	}

	return string(code)
}

// SendVerificationEmail mails a verification code to a new account and
// returns the code so debug builds can expose it.
func (es *EmailService) SendVerificationEmail(email, name string) (string, error) {
	es.mutex.RLock()
	existing, exists := es.verificationCodes[email]
	es.mutex.RUnlock()

	var code string
	if exists && !existing.Used && time.Now().Before(existing.ExpiresAt) {
		code = existing.Code
	} else {
		code = es.generateVerificationCode()

		es.mutex.Lock()
		es.verificationCodes[email] = VerificationCode{
			Code:      code,
			Email:     email,
			ExpiresAt: time.Now().Add(10 * time.Minute),
			Used:      false,
		}
		es.mutex.Unlock()
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Wanderly - Email Verification")

	textBody := fmt.Sprintf(`Hello %s!

Welcome to Wanderly! Please verify your email address to complete your registration.

Your verification code is: %s

This code will expire in 10 minutes.

If you didn't create a Wanderly account, please ignore this email.

Happy wandering!
The Wanderly Team
`, name, code)

	htmlBody := fmt.Sprintf(`<html><body>
<h2>Hello %s!</h2>
<p>Welcome to Wanderly! Please verify your email address to complete your registration.</p>
<p>Your verification code is: <strong>%s</strong></p>
<p><small>This code will expire in 10 minutes.</small></p>
<p>If you didn't create a Wanderly account, please ignore this email.</p>
<p>Happy wandering!<br><strong>The Wanderly Team</strong></p>
</body></html>`, name, code)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return code, nil
}

// VerifyCode checks a submitted code and consumes it on success.
func (es *EmailService) VerifyCode(email, inputCode string) bool {
	es.mutex.RLock()
	stored, exists := es.verificationCodes[email]
	es.mutex.RUnlock()

	if !exists || stored.Used {
		return false
	}

	if time.Now().After(stored.ExpiresAt) {
		es.mutex.Lock()
		delete(es.verificationCodes, email)
		es.mutex.Unlock()
		return false
	}

	if stored.Code != inputCode {
		return false
	}

	es.mutex.Lock()
	stored.Used = true
	es.verificationCodes[email] = stored
	es.mutex.Unlock()

	return true
}

// GetVerificationCode exposes a pending code for debugging.
func (es *EmailService) GetVerificationCode(email string) string {
	es.mutex.RLock()
	defer es.mutex.RUnlock()

	if code, exists := es.verificationCodes[email]; exists && !code.Used && time.Now().Before(code.ExpiresAt) {
		return code.Code
	}
	return ""
}

func (es *EmailService) cleanupExpiredCodes() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		es.mutex.Lock()
		now := time.Now()
		for email, code := range es.verificationCodes {
			if now.After(code.ExpiresAt) || code.Used {
				delete(es.verificationCodes, email)
			}
		}
		es.mutex.Unlock()
	}
}
