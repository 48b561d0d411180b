package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	config "github.com/mukundi-dev/mentor_bridge/configs"
	"github.com/mukundi-dev/mentor_bridge/database"
	"github.com/mukundi-dev/mentor_bridge/models"
	"github.com/mukundi-dev/mentor_bridge/notifications"
)

const certificateSessionCount = 8

// CheckAndGenerateCertificate issues a completion certificate once a
// mentor/mentee pair has accumulated enough accepted, elapsed meetings.
// Called in a goroutine after a meeting is accepted; failures are logged
// and retried naturally on the next acceptance.
func CheckAndGenerateCertificate(meeting models.Meeting) {
	var completedCount int64
	database.DB.Model(&models.Meeting{}).
		Where("mentee_id = ? AND mentor_id = ? AND status = ? AND end_time < ?",
			meeting.MenteeID, meeting.MentorID, models.MeetingStatusAccepted, time.Now()).
		Count(&completedCount)

	if completedCount < certificateSessionCount {
		return
	}

	var mentor models.User
	if err := database.DB.First(&mentor, "id = ?", meeting.MentorID).Error; err != nil {
		log.Printf("🔥 Certificate generation: mentor %s not found: %v", meeting.MentorID, err)
		return
	}
	var mentee models.User
	if err := database.DB.First(&mentee, "id = ?", meeting.MenteeID).Error; err != nil {
		log.Printf("🔥 Certificate generation: mentee %s not found: %v", meeting.MenteeID, err)
		return
	}

	title := fmt.Sprintf("Mentorship Program with %s - %d Sessions", mentor.FullName, certificateSessionCount)

	var existingCert models.Certificate
	if err := database.DB.Where("mentee_id = ? AND title = ?", meeting.MenteeID, title).First(&existingCert).Error; err == nil {
		return
	}

	htmlData, err := generateCertificateHTML(mentee.FullName, mentor.FullName, title)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadCertificate(pdfBytes, meeting.MenteeID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	newCertificate := models.Certificate{
		MenteeID:       meeting.MenteeID,
		MentorID:       meeting.MentorID,
		Title:          title,
		CompletionDate: time.Now(),
		CertificateURL: uploadURL,
	}

	if err := database.DB.Create(&newCertificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for mentee %s: %v", meeting.MenteeID, err)
		return
	}
	log.Printf("✅ Generated and uploaded certificate '%s' for mentee %s.", title, meeting.MenteeID)

	go notifications.SendEmail(mentee.FullName, mentee.Email, "Your Mentorship Certificate is Ready!",
		fmt.Sprintf("<h1>Congratulations!</h1><p>You completed %d sessions with %s. <a href='%s'>Download your certificate</a>.</p>",
			certificateSessionCount, mentor.FullName, uploadURL))
}

func generateCertificateHTML(menteeName, mentorName, title string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		MenteeName     string
		MentorName     string
		Title          string
		CompletionDate string
	}{
		MenteeName:     menteeName,
		MentorName:     mentorName,
		Title:          title,
		CompletionDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, menteeID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", menteeID, uuid.New().String()),
		Folder:       "mentor_bridge_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
