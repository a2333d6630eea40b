package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// Enabled reports whether the config points at a real SMTP server. Mail is
// best-effort everywhere; an empty config simply disables it.
func (cfg SMTPConfig) Enabled() bool {
	return cfg.Host != "" && cfg.Port != 0
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

func WelcomeHTML(username string) string {
	return fmt.Sprintf(`<p>Hi <b>%s</b>,</p><p>Your forum account is ready. You can now sign in, publish posts and join discussions.</p>`, username)
}
