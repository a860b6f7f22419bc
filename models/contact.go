package models

import "time"

type ContactSubmission struct {
	SubmissionID string     `json:"submissionId" bson:"submissionId"`
	Name         string     `json:"name" bson:"name"`
	Email        string     `json:"email" bson:"email"`
	Subject      string     `json:"subject,omitempty" bson:"subject,omitempty"`
	Message      string     `json:"message" bson:"message"`
	Status       string     `json:"status" bson:"status"` // new, replied
	Reply        string     `json:"reply,omitempty" bson:"reply,omitempty"`
	RepliedAt    *time.Time `json:"repliedAt,omitempty" bson:"repliedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
}
