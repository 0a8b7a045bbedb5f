// handlers/game.go
package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"trivia-platform/game"
)

func ImageSelectPage(catalog *game.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		randomImages := catalog.SampleImages(4)

		data := map[string]interface{}{
			"Title":        "Pick an Image - Team Trivia",
			"RandomImages": randomImages,
			"TotalImages":  len(catalog.AvailableImages()),
		}

		tmpl := template.Must(template.ParseFiles("templates/image_select.html"))
		tmpl.Execute(w, data)
	}
}

// GamePage renders the question set for one image. A number with no
// catalog entry, or an entry no questions can be extracted from, sends
// the player back to image selection rather than erroring.
func GamePage(catalog *game.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		imageNumber, err := strconv.Atoi(vars["number"])
		if err != nil {
			http.Redirect(w, r, "/image-select", http.StatusSeeOther)
			return
		}

		entry, ok := catalog.Entry(imageNumber)
		if !ok {
			log.Printf("Image %s not found in catalog", catalog.Key(imageNumber))
			http.Redirect(w, r, "/image-select", http.StatusSeeOther)
			return
		}

		allQuestions := game.ExtractQuestions(entry)
		if len(allQuestions) == 0 {
			log.Printf("No questions extracted for %s", catalog.Key(imageNumber))
			http.Redirect(w, r, "/image-select", http.StatusSeeOther)
			return
		}

		selected := game.Sample(allQuestions, 10)
		groups := game.GroupByDifficulty(selected)

		imageKey := catalog.Key(imageNumber)
		data := map[string]interface{}{
			"Title":          "Game - Team Trivia",
			"ImageNumber":    imageNumber,
			"ImageKey":       imageKey,
			"ImageURL":       "/static/" + imageKey,
			"Groups":         groups,
			"TotalQuestions": len(selected),
		}

		tmpl := template.Must(template.ParseFiles("templates/game.html"))
		tmpl.Execute(w, data)
	}
}

func CheckImage(catalog *game.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		imageNumber, err := strconv.Atoi(vars["number"])
		if err != nil {
			http.Error(w, "Invalid image number", http.StatusBadRequest)
			return
		}

		_, exists := catalog.Entry(imageNumber)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"image_number":           imageNumber,
			"image_key":              catalog.Key(imageNumber),
			"exists":                 exists,
			"available_images_count": len(catalog.AvailableImages()),
		})
	}
}
