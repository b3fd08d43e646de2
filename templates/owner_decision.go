package templates

import (
	"fmt"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/usecase"
)

const (
	subjectOwnerApproved = "Your Recharge vehicle owner application is approved"
	subjectOwnerRejected = "Update on your Recharge vehicle owner application"
)

const ownerDecisionHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <p>Dear {{if .OwnerName}}{{.OwnerName}}{{else}}vehicle owner{{end}},</p>
  {{if .Approved}}
  <p>Your application to list vehicles with Recharge Travels has been <strong>approved</strong>. You can now add vehicles and accept bookings.</p>
  {{else}}
  <p>We have reviewed your application to list vehicles with Recharge Travels and cannot approve it at this time.</p>
  {{end}}
  <table cellpadding="4">
    <tr><td>Application</td><td>{{.OwnerID}}</td></tr>
    <tr><td>Status</td><td>{{humanize .Status}}</td></tr>
    {{if .Notes}}<tr><td>Notes</td><td>{{.Notes}}</td></tr>{{end}}
  </table>
  <p>Recharge Travels partner team</p>
</body>
</html>`

const ownerDecisionText = `Dear {{if .OwnerName}}{{.OwnerName}}{{else}}vehicle owner{{end}},

{{if .Approved}}Your application to list vehicles with Recharge Travels has been approved. You can now add vehicles and accept bookings.{{else}}We have reviewed your application to list vehicles with Recharge Travels and cannot approve it at this time.{{end}}

Application: {{.OwnerID}}
Status:      {{humanize .Status}}
{{if .Notes}}Notes:       {{.Notes}}
{{end}}
Recharge Travels partner team`

var (
	ownerDecisionHTMLTmpl = mustHTML("owner_decision_html", ownerDecisionHTML)
	ownerDecisionTextTmpl = mustText("owner_decision_text", ownerDecisionText)
)

// OwnerDecisionTemplate renders the approve or reject notice for an owner
type OwnerDecisionTemplate struct{}

func NewOwnerDecisionTemplate() *OwnerDecisionTemplate {
	return &OwnerDecisionTemplate{}
}

func (t *OwnerDecisionTemplate) Kind() string {
	return usecase.EmailOwnerDecision
}

func (t *OwnerDecisionTemplate) Render(data interface{}) (entity.EmailMessage, error) {
	d, ok := data.(usecase.OwnerDecisionEmail)
	if !ok {
		return entity.EmailMessage{}, fmt.Errorf("owner decision: unexpected data %T", data)
	}

	approved := d.Status == entity.OwnerVerified
	view := struct {
		OwnerID   string
		OwnerName string
		Status    string
		Notes     string
		Approved  bool
	}{d.OwnerID, d.OwnerName, string(d.Status), d.Notes, approved}

	html, err := renderHTML(ownerDecisionHTMLTmpl, view)
	if err != nil {
		return entity.EmailMessage{}, fmt.Errorf("failed to render owner decision html: %w", err)
	}
	text, err := renderText(ownerDecisionTextTmpl, view)
	if err != nil {
		return entity.EmailMessage{}, fmt.Errorf("failed to render owner decision text: %w", err)
	}

	subject := subjectOwnerRejected
	if approved {
		subject = subjectOwnerApproved
	}

	return entity.EmailMessage{
		To:      d.Email,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}, nil
}
