// cmd/preflight/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"servicemonitor/internal/config"
	"servicemonitor/internal/domain"
)

func main() {
	configPath := flag.String("config", "./config.json", "path to the config file")
	flag.Parse()

	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err.Error())
	}
	ok(fmt.Sprintf("config %s: %d tests, %d recipients, %d script recipients",
		*configPath, len(cfg.Tests), len(cfg.Contacts.Recipients), len(cfg.Contacts.ScriptRecipients)))

	if len(cfg.Tests) == 0 {
		warn("no tests configured — runs will complete without probing anything.")
	}
	for _, t := range cfg.Tests {
		switch t.Method {
		case domain.MethodGet, domain.MethodPost:
			ok(fmt.Sprintf("test %s: %s %s accept %v", t.Name, strings.ToUpper(string(t.Method)), t.URL, t.Accept))
		default:
			warn(fmt.Sprintf("test %s: method %q is unsupported and will report as a script error.", t.Name, t.Method))
		}
	}

	if cfg.Contacts.Source.Account == "" {
		warn("contacts.source.account is empty — the mailer cannot build a From address.")
	} else {
		ok("From address: " + cfg.Contacts.Source.Address())
	}

	secrets := config.FromEnv()
	if secrets.EmailAppPassword == "" {
		warn("EMAIL_APP_PASSWORD is empty — alert mail will fail if a run needs to send any.")
	} else {
		ok("EMAIL_APP_PASSWORD present")
	}
	if secrets.SlackWebhook == "" {
		warn("SLACK_WEBHOOK empty — alerts go out by mail only.")
	} else {
		ok("SLACK_WEBHOOK present")
	}

	ok("preflight passed")
}
