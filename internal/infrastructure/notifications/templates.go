package notifications

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"hauling_pros/internal/domain/entities"
)

const companyName = "Triangle Hauling Pros"

type message struct {
	Subject string
	Text    string
	HTML    string
}

type templateData struct {
	Company        string
	Name           string
	Email          string
	Phone          string
	Address        string
	ServiceType    string
	PreferredDate  string
	PreferredTime  string
	Amount         string
	AdditionalInfo string
	PaymentMethod  string
	ConfirmURL     string
	PaymentLink    string
}

func newTemplateData(e entities.Estimate) templateData {
	d := templateData{
		Company:        companyName,
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		Address:        e.Address,
		ServiceType:    string(e.ServiceType),
		PreferredTime:  e.PreferredTime,
		AdditionalInfo: e.AdditionalInfo,
		PaymentMethod:  strings.ReplaceAll(string(e.PaymentMethod), "_", " "),
		Amount:         "pending",
	}
	if !e.PreferredDate.IsZero() {
		d.PreferredDate = e.PreferredDate.Format(entities.DateLayout)
	}
	if e.EstimatedAmount != nil {
		d.Amount = fmt.Sprintf("$%.2f", *e.EstimatedAmount)
	}
	return d
}

type mailTemplate struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

func mustTemplate(name, subject, text, html string) mailTemplate {
	return mailTemplate{
		subject: texttemplate.Must(texttemplate.New(name + ".subject").Parse(subject)),
		text:    texttemplate.Must(texttemplate.New(name + ".txt").Parse(text)),
		html:    htmltemplate.Must(htmltemplate.New(name + ".html").Parse(html)),
	}
}

func (t mailTemplate) render(data templateData) (message, error) {
	var subject, text, html bytes.Buffer
	if err := t.subject.Execute(&subject, data); err != nil {
		return message{}, err
	}
	if err := t.text.Execute(&text, data); err != nil {
		return message{}, err
	}
	if err := t.html.Execute(&html, data); err != nil {
		return message{}, err
	}
	return message{Subject: subject.String(), Text: text.String(), HTML: html.String()}, nil
}

var estimateReadyTemplate = mustTemplate("estimate_ready",
	`Your Estimate for {{.ServiceType}} - Action Required`,
	`Hi {{.Name}},

Your estimate from {{.Company}} is ready.

Service Type: {{.ServiceType}}
Preferred Date: {{.PreferredDate}}
Preferred Time: {{.PreferredTime}}
Estimated Amount: {{.Amount}}
{{if .AdditionalInfo}}Additional Information: {{.AdditionalInfo}}
{{end}}
Confirm your appointment here (you can update the date and time):
{{.ConfirmURL}}

{{.Company}} Team
`,
	`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>Your Estimate from {{.Company}}</h1>
  <p><strong>Service Type:</strong> {{.ServiceType}}</p>
  <p><strong>Preferred Date:</strong> {{.PreferredDate}}</p>
  <p><strong>Preferred Time:</strong> {{.PreferredTime}}</p>
  <p><strong>Estimated Amount:</strong> {{.Amount}}</p>
  {{if .AdditionalInfo}}<p><strong>Additional Information:</strong> {{.AdditionalInfo}}</p>{{end}}
  <p><a href="{{.ConfirmURL}}">Confirm Your Appointment</a></p>
  <p>If the button doesn't work, copy and paste this link into your browser:<br>{{.ConfirmURL}}</p>
  <p>Best regards,<br>{{.Company}} Team</p>
</div>`,
)

var adminNewEstimateTemplate = mustTemplate("admin_new_estimate",
	`New Estimate Request for {{.ServiceType}}`,
	`New estimate request.

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Address: {{.Address}}

Service Type: {{.ServiceType}}
Preferred Date: {{.PreferredDate}}
Preferred Time: {{.PreferredTime}}
Estimated Amount: {{.Amount}}
{{if .AdditionalInfo}}Additional Information: {{.AdditionalInfo}}
{{end}}
Review this estimate in the admin dashboard and send the final estimate to the customer.
`,
	`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>New Estimate Request</h1>
  <h2>Customer Details</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Address:</strong> {{.Address}}</p>
  <h2>Service Details</h2>
  <p><strong>Service Type:</strong> {{.ServiceType}}</p>
  <p><strong>Preferred Date:</strong> {{.PreferredDate}}</p>
  <p><strong>Preferred Time:</strong> {{.PreferredTime}}</p>
  <p><strong>Estimated Amount:</strong> {{.Amount}}</p>
  {{if .AdditionalInfo}}<p><strong>Additional Information:</strong> {{.AdditionalInfo}}</p>{{end}}
  <p>Please review this estimate in the admin dashboard and send the final estimate to the customer.</p>
</div>`,
)

var appointmentConfirmedTemplate = mustTemplate("appointment_confirmed",
	`Appointment Confirmed - {{.ServiceType}}`,
	`Hi {{.Name}},

Your appointment is confirmed.

Service Type: {{.ServiceType}}
Date: {{.PreferredDate}}
Time: {{.PreferredTime}}
Estimated Amount: {{.Amount}}
Payment Method: {{.PaymentMethod}}
{{if .AdditionalInfo}}Additional Information: {{.AdditionalInfo}}
{{end}}{{if .PaymentLink}}
Complete your payment here:
{{.PaymentLink}}
{{end}}
Our team will arrive during the scheduled time slot. Please make sure the items are accessible.

{{.Company}} Team
`,
	`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>Appointment Confirmed!</h1>
  <p><strong>Service Type:</strong> {{.ServiceType}}</p>
  <p><strong>Date:</strong> {{.PreferredDate}}</p>
  <p><strong>Time:</strong> {{.PreferredTime}}</p>
  <p><strong>Estimated Amount:</strong> {{.Amount}}</p>
  <p><strong>Payment Method:</strong> {{.PaymentMethod}}</p>
  {{if .AdditionalInfo}}<p><strong>Additional Information:</strong> {{.AdditionalInfo}}</p>{{end}}
  <h2>What to Expect</h2>
  <ul>
    <li>The items to be serviced are easily accessible</li>
    <li>Someone is available to provide access</li>
    <li>The area is clear for our team to work</li>
  </ul>
  {{if .PaymentLink}}<h2>Complete Your Payment</h2>
  <p><a href="{{.PaymentLink}}">Pay Now</a></p>
  <p>If the button doesn't work, copy and paste this link into your browser:<br>{{.PaymentLink}}</p>{{end}}
  <p>Best regards,<br>{{.Company}} Team</p>
</div>`,
)
