package notify

import "fmt"

// Template names accepted by the dispatcher.
const (
	TemplateFarmerWelcome       = "farmer-welcome"
	TemplateAssessmentReceived  = "assessment-received"
	TemplateAssessmentScheduled = "assessment-scheduled"
	TemplateContactRelay        = "contact-relay"
	TemplateNewsletterWelcome   = "newsletter-welcome"
)

// Render produces the subject and HTML body for an intent.
func Render(intent Intent) (subject, body string) {
	d := intent.Data
	switch intent.Template {
	case TemplateFarmerWelcome:
		subject = "Welcome to Aaron Agronomy Services!"
		body = fmt.Sprintf(`<h2>Welcome to Aaron Agronomy Services!</h2>
<p>Dear %s,</p>
<p>Thank you for registering with us! Your account ID is: <strong>%s</strong></p>
<p>We're excited to help you succeed in your farming journey.</p>`,
			d["name"], d["accountId"])
	case TemplateAssessmentReceived:
		subject = "New Farm Assessment Request: " + d["referenceNumber"]
		body = fmt.Sprintf(`<h2>New Farm Assessment Request</h2>
<p><strong>Reference:</strong> %s</p>
<p><strong>Farm:</strong> %s</p>
<p><strong>Location:</strong> %s</p>
<p><strong>Farmer:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>`,
			d["referenceNumber"], d["farmName"], d["location"], d["fullName"], d["phone"])
	case TemplateAssessmentScheduled:
		subject = "Farm Assessment Scheduled: " + d["referenceNumber"]
		body = fmt.Sprintf(`<h2>Farm Assessment Scheduled</h2>
<p>Dear %s,</p>
<p>Your farm assessment has been scheduled for %s.</p>
<p>Reference: <strong>%s</strong></p>`,
			d["fullName"], d["scheduledDate"], d["referenceNumber"])
	case TemplateContactRelay:
		subject = "New Contact Message: " + d["subject"]
		body = fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong><br/>%s</p>`,
			d["name"], d["phone"], d["email"], d["subject"], d["message"])
	case TemplateNewsletterWelcome:
		subject = "Welcome to Our Newsletter!"
		body = `<h2>Welcome to Our Newsletter!</h2>
<p>Thank you for subscribing to Aaron Agronomy Services newsletter.</p>`
	default:
		subject = intent.Template
		body = fmt.Sprintf("<p>%v</p>", intent.Data)
	}
	return subject, body
}
