package products

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"nutriva/db"
	"nutriva/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const productPicDir = "static/productpic"

// UploadProductImage accepts a multipart image, writes a full-size copy and
// a 400px thumbnail, and points the product's imageUrl at the upload.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		log.Println("UploadProductImage decode error:", err)
		http.Error(w, "Unreadable image", http.StatusBadRequest)
		return
	}

	if err := utils.EnsureDir(productPicDir); err != nil {
		http.Error(w, "Storage unavailable", http.StatusInternalServerError)
		return
	}

	name := uuid.NewString() + ".jpg"
	if err := imaging.Save(img, filepath.Join(productPicDir, name)); err != nil {
		log.Println("UploadProductImage save error:", err)
		http.Error(w, "Failed to store image", http.StatusInternalServerError)
		return
	}

	thumb := imaging.Resize(img, 400, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(productPicDir, "thumb_"+name)); err != nil {
		log.Println("UploadProductImage thumbnail error:", err)
	}

	imageURL := "/" + productPicDir + "/" + name
	_, err = db.ProductCollection.UpdateOne(ctx,
		bson.M{"productId": ps.ByName("productid")},
		bson.M{"$set": bson.M{"imageUrl": imageURL, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("UploadProductImage update error:", err)
		http.Error(w, "Failed to attach image", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"imageUrl": imageURL})
}
