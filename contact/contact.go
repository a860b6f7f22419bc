package contact

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"nutriva/db"
	"nutriva/mailer"
	"nutriva/models"
	"nutriva/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmitContact records a storefront contact form submission.
func SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var submission models.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	submission.Email = strings.TrimSpace(strings.ToLower(submission.Email))
	if submission.Name == "" || submission.Email == "" || submission.Message == "" {
		http.Error(w, "Name, email and message are required", http.StatusBadRequest)
		return
	}

	submission.SubmissionID = uuid.NewString()
	submission.Status = "new"
	submission.Reply = ""
	submission.RepliedAt = nil
	submission.CreatedAt = time.Now()

	if _, err := db.ContactCollection.InsertOne(ctx, submission); err != nil {
		log.Println("SubmitContact InsertOne error:", err)
		http.Error(w, "Failed to record submission", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}

// GetSubmissions lists submissions for the admin console, newest first,
// optional ?status= filter.
func GetSubmissions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.ContactCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetSubmissions Find error:", err)
		http.Error(w, "Could not retrieve submissions", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var submissions []models.ContactSubmission
	if err := cursor.All(ctx, &submissions); err != nil {
		http.Error(w, "Error reading submissions", http.StatusInternalServerError)
		return
	}
	if len(submissions) == 0 {
		submissions = []models.ContactSubmission{}
	}

	utils.RespondWithJSON(w, http.StatusOK, submissions)
}

// ReplyToSubmission sends the admin's reply through the email function and
// marks the submission replied. The email failure surfaces to the admin; the
// submission stays unmodified in that case.
func ReplyToSubmission(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	var payload struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Message == "" {
		http.Error(w, "Reply message is required", http.StatusBadRequest)
		return
	}

	var submission models.ContactSubmission
	err := db.ContactCollection.FindOne(ctx, bson.M{"submissionId": ps.ByName("submissionid")}).Decode(&submission)
	if err != nil {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return
	}

	subject := payload.Subject
	if subject == "" {
		subject = "Re: " + submission.Subject
	}

	sendID, err := mailer.New().SendReply(mailer.ReplyRequest{
		To:              submission.Email,
		Subject:         subject,
		ReplyMessage:    payload.Message,
		OriginalMessage: submission.Message,
		UserName:        submission.Name,
	})
	if err != nil {
		log.Println("ReplyToSubmission send error:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to send reply email")
		return
	}

	now := time.Now()
	_, err = db.ContactCollection.UpdateOne(ctx,
		bson.M{"submissionId": submission.SubmissionID},
		bson.M{"$set": bson.M{"status": "replied", "reply": payload.Message, "repliedAt": now}},
	)
	if err != nil {
		log.Println("ReplyToSubmission update error:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "replied", "sendId": sendID})
}
