package core

import (
	"bytes"
	htmltmpl "html/template"
	"net/mail"
	"sync"
	texttmpl "text/template"

	"github.com/pkg/errors"

	appfs "github.com/impulsa/seguimiento/fs"
)

var (
	textTemplates *texttmpl.Template
	htmlTemplates *htmltmpl.Template
	tmplInit      sync.Once
)

type (
	EmailMessage struct {
		To      []mail.Address
		Cc      []mail.Address
		Bcc     []mail.Address
		Subject string
		BodyStr string // simple text/plain, non-templated content

		// templated contents
		TemplateName string // without ext
		TemplateData interface{}
		TextContent  string
		HTMLContent  string
	}

	ContextData struct {
		FrontendBaseURL string
		Data            interface{}
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}
)

// ParseEmailTemplates loads all embedded email templates. It must be called
// once at startup before any EmailMessage with a TemplateName is rendered.
func ParseEmailTemplates(logger Logger) {
	tmplInit.Do(func() {
		var err error
		if textTemplates, err = texttmpl.ParseFS(appfs.FS, "templates/*.txt"); err != nil {
			logger.Fatal("parsing text email templates", err)
		}
		if htmlTemplates, err = htmltmpl.ParseFS(appfs.FS, "templates/*.html"); err != nil {
			logger.Fatal("parsing html email templates", err)
		}
	})
}

func (m *EmailMessage) contextData(conf *Config) ContextData {
	return ContextData{
		FrontendBaseURL: conf.FrontendBaseURL,
		Data:            m.TemplateData,
	}
}

// Render fills TextContent and HTMLContent from BodyStr or the named template.
func (m *EmailMessage) Render(conf *Config) error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
		return nil
	}
	if m.TemplateName == "" {
		return nil
	}

	data := m.contextData(conf)

	if textTemplates != nil {
		if tmpl := textTemplates.Lookup(m.TemplateName + ".txt"); tmpl != nil {
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, data); err != nil {
				return errors.Wrap(err, "rendering text template "+m.TemplateName)
			}
			m.TextContent = buf.String()
		}
	}
	if htmlTemplates != nil {
		if tmpl := htmlTemplates.Lookup(m.TemplateName + ".html"); tmpl != nil {
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, data); err != nil {
				return errors.Wrap(err, "rendering html template "+m.TemplateName)
			}
			m.HTMLContent = buf.String()
		}
	}
	return nil
}

func (m *EmailMessage) HasRecipients() bool {
	return len(m.To)+len(m.Cc)+len(m.Bcc) > 0
}

func (m *EmailMessage) HasContent() bool {
	return m.TextContent != "" || m.HTMLContent != ""
}
