package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"salama/internal/domains/notification/model/dto"
	"salama/shared/whatsapp"
)

// templateData is the interpolation context shared by both email bodies.
// Amounts are pre-formatted so the templates stay free of number logic.
type templateData struct {
	GuestName      string
	GuestEmail     string
	GuestPhone     string
	GuestWhatsapp  string
	ListingTitle   string
	ListingID      string
	CheckInDate    string
	CheckOutDate   string
	Nights         int
	NightsLabel    string
	NumberOfGuests int
	PricePerNight  string
	TotalPrice     string
	SiteURL        string
	SupportNumber  string
	SupportLink    string
	GuestContact   string
}

func newTemplateData(req dto.BookingNotificationRequest, siteURL, supportNumber string) templateData {
	nightsLabel := "nuit"
	if req.Nights > 1 {
		nightsLabel = "nuits"
	}

	guestPhone := req.GuestPhone
	if guestPhone == "" {
		guestPhone = "Non fourni"
	}

	// The admin reaches the guest on WhatsApp via whichever number was given.
	guestContact := req.GuestWhatsapp
	if guestContact == "" {
		guestContact = req.GuestPhone
	}

	return templateData{
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     guestPhone,
		GuestWhatsapp:  req.GuestWhatsapp,
		ListingTitle:   req.ListingTitle,
		ListingID:      req.ListingID,
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
		Nights:         req.Nights,
		NightsLabel:    nightsLabel,
		NumberOfGuests: req.NumberOfGuests,
		PricePerNight:  formatAmount(req.PricePerNight),
		TotalPrice:     formatAmount(req.TotalPrice),
		SiteURL:        siteURL,
		SupportNumber:  supportNumber,
		SupportLink:    "https://wa.me/" + whatsapp.Digits(supportNumber),
		GuestContact:   "https://wa.me/" + whatsapp.Digits(guestContact),
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func renderAdminEmail(req dto.BookingNotificationRequest, siteURL, supportNumber string) (string, error) {
	return render(adminTemplate, newTemplateData(req, siteURL, supportNumber))
}

func renderGuestEmail(req dto.BookingNotificationRequest, siteURL, supportNumber string) (string, error) {
	return render(guestTemplate, newTemplateData(req, siteURL, supportNumber))
}

func render(tmpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}

	return buf.String(), nil
}

var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #2563eb; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f9fafb; padding: 30px; border: 1px solid #e5e7eb; }
    .detail-row { margin: 15px 0; padding: 10px; background: white; border-radius: 6px; }
    .label { font-weight: bold; color: #374151; }
    .value { color: #1f2937; margin-top: 5px; }
    .button { display: inline-block; padding: 12px 24px; background: #2563eb; color: white; text-decoration: none; border-radius: 6px; margin-top: 20px; }
    .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #6b7280; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">🏠 Nouvelle demande de réservation</h1>
    </div>

    <div class="content">
      <div class="detail-row">
        <div class="label">Logement</div>
        <div class="value">{{.ListingTitle}}{{if .ListingID}} (réf. {{.ListingID}}){{end}}</div>
      </div>

      <div class="detail-row">
        <div class="label">Client</div>
        <div class="value">
          {{.GuestName}}<br>
          Email: <a href="mailto:{{.GuestEmail}}">{{.GuestEmail}}</a><br>
          Téléphone: {{.GuestPhone}}<br>
          {{if .GuestWhatsapp}}WhatsApp: {{.GuestWhatsapp}}<br>{{end}}
          <a href="{{.GuestContact}}">Contacter sur WhatsApp</a>
        </div>
      </div>

      <div class="detail-row">
        <div class="label">Dates</div>
        <div class="value">
          Arrivée: {{.CheckInDate}}<br>
          Départ: {{.CheckOutDate}}<br>
          Durée: {{.Nights}} {{.NightsLabel}}
        </div>
      </div>

      <div class="detail-row">
        <div class="label">Détails</div>
        <div class="value">
          Nombre de personnes: {{.NumberOfGuests}}<br>
          Prix par nuit: ${{.PricePerNight}}<br>
          <strong>Total: ${{.TotalPrice}}</strong>
        </div>
      </div>

      <a href="{{.SiteURL}}/admin" class="button">
        Voir dans le panneau d'administration →
      </a>

      <div class="footer">
        <p>Cette demande a été soumise via {{.SiteURL}}</p>
      </div>
    </div>
  </div>
</body>
</html>`))

var guestTemplate = template.Must(template.New("guest").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #2563eb; color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center; }
    .content { background: #f9fafb; padding: 30px; border: 1px solid #e5e7eb; }
    .booking-summary { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #6b7280; font-size: 14px; text-align: center; }
    .highlight { background: #eff6ff; padding: 15px; border-left: 4px solid #2563eb; margin: 20px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">✓ Demande reçue</h1>
    </div>

    <div class="content">
      <p>Bonjour {{.GuestName}},</p>

      <p>Merci pour votre demande de réservation ! Nous avons bien reçu votre demande et nous vous contacterons très bientôt.</p>

      <div class="booking-summary">
        <h3 style="margin-top: 0; color: #1f2937;">Résumé de votre demande</h3>

        <p><strong>Logement:</strong> {{.ListingTitle}}</p>
        <p><strong>Dates:</strong> {{.CheckInDate}} → {{.CheckOutDate}}</p>
        <p><strong>Durée:</strong> {{.Nights}} {{.NightsLabel}}</p>
        <p><strong>Personnes:</strong> {{.NumberOfGuests}}</p>
        <p><strong>Prix total estimé:</strong> ${{.TotalPrice}}</p>
      </div>

      <div class="highlight">
        <strong>Prochaines étapes:</strong><br>
        Notre équipe vous contactera sous 24 heures pour:<br>
        • Confirmer la disponibilité<br>
        • Répondre à vos questions<br>
        • Finaliser votre réservation
      </div>

      <p><strong>Besoin d'aide immédiate?</strong></p>
      <p>Contactez-nous sur WhatsApp: <a href="{{.SupportLink}}">{{.SupportNumber}}</a></p>

      <div class="footer">
        <p>Cordialement,<br/>
        L'équipe Salama</p>
        <p style="margin-top: 20px; color: #9ca3af;">
          {{.SiteURL}}<br>
          Logements de confiance à Kinshasa
        </p>
      </div>
    </div>
  </div>
</body>
</html>`))
