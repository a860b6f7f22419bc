package journal

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"nutriva/db"
	"nutriva/models"
	"nutriva/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// GetPosts lists published posts for the storefront; ?all=true (admin route)
// includes drafts.
func GetPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"published": true}
	if r.URL.Query().Get("all") == "true" {
		filter = bson.M{}
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.JournalCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetPosts Find error:", err)
		http.Error(w, "Could not retrieve posts", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var posts []models.JournalPost
	if err := cursor.All(ctx, &posts); err != nil {
		http.Error(w, "Error reading posts", http.StatusInternalServerError)
		return
	}
	if len(posts) == 0 {
		posts = []models.JournalPost{}
	}

	utils.RespondWithJSON(w, http.StatusOK, posts)
}

func GetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var post models.JournalPost
	err := db.JournalCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&post)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

func CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var post models.JournalPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if post.Title == "" || post.Body == "" {
		http.Error(w, "Title and body are required", http.StatusBadRequest)
		return
	}

	post.PostID = uuid.NewString()
	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}
	post.Author = utils.GetUsernameFromRequest(r)
	post.CreatedAt = time.Now()

	if _, err := db.JournalCollection.InsertOne(ctx, post); err != nil {
		log.Println("CreatePost InsertOne error:", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, post)
}

func UpdatePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var post models.JournalPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	set := bson.M{
		"title":      post.Title,
		"excerpt":    post.Excerpt,
		"body":       post.Body,
		"coverImage": post.CoverImage,
		"published":  post.Published,
		"updatedAt":  time.Now(),
	}
	if post.Slug != "" {
		set["slug"] = post.Slug
	}

	res, err := db.JournalCollection.UpdateOne(ctx,
		bson.M{"postId": ps.ByName("postid")},
		bson.M{"$set": set},
	)
	if err != nil {
		log.Println("UpdatePost error:", err)
		http.Error(w, "Failed to update post", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.JournalCollection.DeleteOne(ctx, bson.M{"postId": ps.ByName("postid")})
	if err != nil {
		log.Println("DeletePost error:", err)
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
