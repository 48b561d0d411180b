package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mukundi-dev/mentor_bridge/database"
	"github.com/mukundi-dev/mentor_bridge/models"
	"github.com/mukundi-dev/mentor_bridge/notifications"
	"github.com/mukundi-dev/mentor_bridge/websocket"
)

func SendMeetingReminders() {
	log.Println("Running job: SendMeetingReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingMeetings []models.Meeting

	err := database.DB.
		Preload("Mentor").
		Preload("Mentee").
		Where("status = ? AND scheduled_time BETWEEN ? AND ?", models.MeetingStatusAccepted, lowerBound, upperBound).
		Find(&upcomingMeetings).Error

	if err != nil {
		log.Printf("Error checking for upcoming meetings: %v", err)
		return
	}

	if len(upcomingMeetings) == 0 {
		return
	}

	for _, meeting := range upcomingMeetings {
		log.Printf("Sending reminder for meeting ID: %s", meeting.ID)

		link := ""
		if meeting.MeetingLink != nil {
			link = *meeting.MeetingLink
		}
		emailSubject := "Reminder: Your Mentorship Meeting Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Meeting Reminder</h1><p>Hi there,</p><p>Your meeting on <b>%s</b> is scheduled to start in one hour at %s.</p><p><b>Meeting Link:</b> <a href='%s'>Join Meeting</a></p>",
			meeting.Topic,
			meeting.ScheduledTime.Format(time.Kitchen),
			link,
		)

		go notifications.SendEmail(meeting.Mentee.FullName, meeting.Mentee.Email, emailSubject, emailBody)
		go notifications.SendEmail(meeting.Mentor.FullName, meeting.Mentor.Email, emailSubject, emailBody)

		websocket.Notify(meeting.MenteeID, websocket.EventMeetingReminder, meeting)
		websocket.Notify(meeting.MentorID, websocket.EventMeetingReminder, meeting)
	}
}
