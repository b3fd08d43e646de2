package templates

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

var funcs = map[string]interface{}{
	"upper": strings.ToUpper,
	"humanize": func(s string) string {
		return strings.ReplaceAll(s, "_", " ")
	},
}

func mustHTML(name, src string) *htmltemplate.Template {
	return htmltemplate.Must(htmltemplate.New(name).Funcs(funcs).Parse(src))
}

func mustText(name, src string) *texttemplate.Template {
	return texttemplate.Must(texttemplate.New(name).Funcs(funcs).Parse(src))
}

func renderHTML(t *htmltemplate.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderText(t *texttemplate.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}
