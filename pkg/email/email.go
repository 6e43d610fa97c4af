package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

// GlobalEmailService is nil when no API key is configured; callers skip
// sending in that case.
var GlobalEmailService *EmailService

type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

type WelcomeEmailData struct {
	Name string
}

type LeadNotificationData struct {
	LeadName   string
	LeadEmail  string
	LeadPhone  string
	LeadSource string
}

type WeeklyDigestData struct {
	Name           string
	NewLeads       int64
	NewOrders      int64
	SoldProperties int64
	SalesVolume    float64
	WeekStart      time.Time
}

func InitEmailService(apiKey string) error {
	svc, err := NewEmailService(apiKey)
	if err != nil {
		return err
	}
	GlobalEmailService = svc
	return nil
}

func NewEmailService(apiKey string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      "EstateCRM <noreply@estatecrm.app>",
		templates: templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("Resend API error: status %d, body %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	return nil
}

func (s *EmailService) SendWelcomeEmail(email, name string) error {
	return s.sendTemplateEmail(email, "Welcome to EstateCRM!", "welcome.html", WelcomeEmailData{Name: name})
}

// SendLeadNotificationEmail tells the agent a new lead landed on their desk.
func (s *EmailService) SendLeadNotificationEmail(agentEmail, leadName, leadEmail, leadPhone, leadSource string) error {
	data := LeadNotificationData{
		LeadName:   leadName,
		LeadEmail:  leadEmail,
		LeadPhone:  leadPhone,
		LeadSource: leadSource,
	}
	return s.sendTemplateEmail(agentEmail, "New Lead in Your CRM", "lead_notification.html", data)
}

// SendWeeklyDigest summarizes the last seven days of CRM activity.
func (s *EmailService) SendWeeklyDigest(email, name string, newLeads, newOrders, soldProperties int64, salesVolume float64, weekStart time.Time) error {
	data := WeeklyDigestData{
		Name:           name,
		NewLeads:       newLeads,
		NewOrders:      newOrders,
		SoldProperties: soldProperties,
		SalesVolume:    salesVolume,
		WeekStart:      weekStart,
	}
	return s.sendTemplateEmail(email, "Your Weekly CRM Digest", "weekly_digest.html", data)
}
