package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"servicemonitor/internal/domain"
)

const (
	defaultTimeout  = 60 * time.Second
	defaultLogDir   = "logs"
	defaultSMTPHost = "smtp.gmail.com"
	defaultSMTPPort = 465
)

// Config is the validated runtime configuration for one monitoring run.
type Config struct {
	Tests       []domain.Test
	Contacts    Contacts
	Email       Email
	HTTPTimeout time.Duration
	LogDir      string
}

// Contacts routes the two notification categories. ScriptRecipients falls
// back to Recipients when the file leaves it empty.
type Contacts struct {
	Recipients       []string
	ScriptRecipients []string
	Source           Source
}

// Source identifies the sending account, split the way app-password setups
// usually are: account ("monitor.bot") plus service suffix ("@gmail.com").
type Source struct {
	Account string
	Service string
}

// Address is the From address notifications are sent as.
func (s Source) Address() string { return s.Account + s.Service }

// Email carries delivery settings for the mail notifier.
type Email struct {
	Subject  string
	SMTPHost string
	SMTPPort int
}

type rawConfig struct {
	Tests              []rawTest   `json:"tests" yaml:"tests"`
	Contacts           rawContacts `json:"contacts" yaml:"contacts"`
	Email              rawEmail    `json:"email" yaml:"email"`
	HTTPTimeoutSeconds int         `json:"http_timeout_seconds" yaml:"http_timeout_seconds"`
	LogDir             string      `json:"log_dir" yaml:"log_dir"`
}

type rawTest struct {
	Name      string         `json:"name" yaml:"name"`
	URL       string         `json:"url" yaml:"url"`
	Type      string         `json:"type" yaml:"type"`
	Payload   map[string]any `json:"payload" yaml:"payload"`
	QueryArgs map[string]any `json:"query_args" yaml:"query_args"`
	Accept    []int          `json:"accept" yaml:"accept"`
}

type rawContacts struct {
	Recipients       []string  `json:"recipients" yaml:"recipients"`
	ScriptRecipients []string  `json:"script_recipients" yaml:"script_recipients"`
	Source           rawSource `json:"source" yaml:"source"`
}

type rawSource struct {
	Account string `json:"account" yaml:"account"`
	Service string `json:"service" yaml:"service"`
}

type rawEmail struct {
	Subject  string `json:"subject" yaml:"subject"`
	SMTPHost string `json:"smtp_host" yaml:"smtp_host"`
	SMTPPort int    `json:"smtp_port" yaml:"smtp_port"`
}

// Load reads and validates the configuration file. Files ending in .yaml or
// .yml decode as YAML, everything else as JSON. Validation reports every
// violation in one error rather than stopping at the first.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	return raw.build()
}

func (r rawConfig) build() (Config, error) {
	var errs error

	tests := make([]domain.Test, 0, len(r.Tests))
	seen := make(map[string]bool, len(r.Tests))
	for i, rt := range r.Tests {
		name := strings.TrimSpace(rt.Name)
		switch {
		case name == "":
			errs = multierr.Append(errs, fmt.Errorf("tests[%d]: name is required", i))
		case seen[name]:
			errs = multierr.Append(errs, fmt.Errorf("tests[%d]: duplicate name %q", i, name))
		}
		seen[name] = true

		url := strings.TrimSpace(rt.URL)
		if url == "" {
			errs = multierr.Append(errs, fmt.Errorf("tests[%d] %q: url is required", i, name))
		}

		if len(rt.Accept) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("tests[%d] %q: accept must list at least one status code", i, name))
		}

		// Methods are normalized, not restricted: an unknown verb is a
		// runtime configuration error reported by the run itself.
		tests = append(tests, domain.Test{
			Name:      name,
			URL:       url,
			Method:    domain.Method(strings.ToLower(strings.TrimSpace(rt.Type))),
			Payload:   rt.Payload,
			QueryArgs: rt.QueryArgs,
			Accept:    rt.Accept,
		})
	}

	if len(r.Contacts.Recipients) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("contacts: recipients must not be empty"))
	}
	scriptRecipients := r.Contacts.ScriptRecipients
	if len(scriptRecipients) == 0 {
		scriptRecipients = r.Contacts.Recipients
	}

	timeout := defaultTimeout
	switch {
	case r.HTTPTimeoutSeconds < 0:
		errs = multierr.Append(errs, fmt.Errorf("http_timeout_seconds must not be negative"))
	case r.HTTPTimeoutSeconds > 0:
		timeout = time.Duration(r.HTTPTimeoutSeconds) * time.Second
	}

	logDir := strings.TrimSpace(r.LogDir)
	if logDir == "" {
		logDir = defaultLogDir
	}

	host := strings.TrimSpace(r.Email.SMTPHost)
	if host == "" {
		host = defaultSMTPHost
	}
	port := r.Email.SMTPPort
	if port == 0 {
		port = defaultSMTPPort
	}
	if port < 0 || port > 65535 {
		errs = multierr.Append(errs, fmt.Errorf("email: smtp_port %d out of range", port))
	}

	if errs != nil {
		return Config{}, fmt.Errorf("invalid config: %w", errs)
	}

	return Config{
		Tests: tests,
		Contacts: Contacts{
			Recipients:       r.Contacts.Recipients,
			ScriptRecipients: scriptRecipients,
			Source: Source{
				Account: strings.TrimSpace(r.Contacts.Source.Account),
				Service: strings.TrimSpace(r.Contacts.Source.Service),
			},
		},
		Email: Email{
			Subject:  r.Email.Subject,
			SMTPHost: host,
			SMTPPort: port,
		},
		HTTPTimeout: timeout,
		LogDir:      logDir,
	}, nil
}

// Secrets carries values that must never live in the config file. Missing
// values are not an error here: the mail notifier rejects an empty password
// only when a send is actually attempted.
type Secrets struct {
	EmailAppPassword string
	SlackWebhook     string
}

func FromEnv() Secrets {
	return Secrets{
		EmailAppPassword: os.Getenv("EMAIL_APP_PASSWORD"),
		SlackWebhook:     os.Getenv("SLACK_WEBHOOK"),
	}
}
