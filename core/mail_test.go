package core

import (
	"net/mail"
	"strings"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func TestEmailMessage_Render(t *testing.T) {
	ParseEmailTemplates(nopLogger{})
	conf := &Config{FrontendBaseURL: "http://localhost:3000"}

	t.Run("plain body", func(t *testing.T) {
		msg := EmailMessage{Subject: "hola", BodyStr: "sin plantilla"}
		if err := msg.Render(conf); err != nil {
			t.Fatalf("Render() failed: %v", err)
		}
		if msg.TextContent != "sin plantilla" {
			t.Errorf("TextContent = %q", msg.TextContent)
		}
		if msg.HTMLContent != "" {
			t.Errorf("HTMLContent = %q, want empty", msg.HTMLContent)
		}
	})

	t.Run("riesgo alert template", func(t *testing.T) {
		msg := EmailMessage{
			To:           []mail.Address{{Address: "staff@test.local"}},
			Subject:      "Alerta de riesgo: Ana López",
			TemplateName: "riesgo_alert",
			TemplateData: map[string]interface{}{
				"Name":           "Ana López",
				"Status":         "En Riesgo",
				"TotalPoints":    20,
				"ExpectedPoints": 100,
			},
		}
		if err := msg.Render(conf); err != nil {
			t.Fatalf("Render() failed: %v", err)
		}
		if !msg.HasContent() {
			t.Fatal("no content rendered")
		}
		for _, want := range []string{"Ana López", "En Riesgo", "20", "100", "http://localhost:3000"} {
			if !strings.Contains(msg.TextContent, want) {
				t.Errorf("TextContent missing %q:\n%s", want, msg.TextContent)
			}
		}
		if !strings.Contains(msg.HTMLContent, "Ana López") {
			t.Error("HTMLContent not rendered from the html template")
		}
	})

	t.Run("unknown template renders nothing", func(t *testing.T) {
		msg := EmailMessage{TemplateName: "nope"}
		if err := msg.Render(conf); err != nil {
			t.Fatalf("Render() failed: %v", err)
		}
		if msg.HasContent() {
			t.Errorf("unexpected content: %q / %q", msg.TextContent, msg.HTMLContent)
		}
	})
}

func TestEmailMessage_HasRecipients(t *testing.T) {
	msg := EmailMessage{}
	if msg.HasRecipients() {
		t.Error("HasRecipients() = true for empty message")
	}
	msg.Bcc = []mail.Address{{Address: "a@b.c"}}
	if !msg.HasRecipients() {
		t.Error("HasRecipients() = false with a Bcc recipient")
	}
}
