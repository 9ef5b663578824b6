package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"

	"yelpcamp/config"
	"yelpcamp/database"
	"yelpcamp/models"
)

const (
	imageHost     = "https://picsum.photos"
	fallbackImage = "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4"

	seedDescription = "Pitch your tent under open skies, with marked trails and a fire ring at every site."
)

var descriptors = []string{
	"Forest", "Ancient", "Petrified", "Roaring", "Cascade", "Tumbling",
	"Silent", "Redwood", "Bullfrog", "Maple", "Misty", "Elk", "Grizzly",
	"Ocean", "Sky", "Dusty", "Diamond",
}

var places = []string{
	"Flats", "Village", "Canyon", "Pond", "Group Camp", "Horse Camp",
	"Ghost Town", "Camp", "Dispersed Camp", "Backcountry", "River", "Creek",
	"Creekside", "Bay", "Spring", "Bayshore", "Sands", "Mule Camp",
	"Hunting Camp", "Cliffs", "Hollow",
}

var cities = []struct {
	City  string
	State string
}{
	{"Austin", "TX"}, {"Portland", "OR"}, {"Denver", "CO"}, {"Asheville", "NC"},
	{"Boise", "ID"}, {"Missoula", "MT"}, {"Flagstaff", "AZ"}, {"Moab", "UT"},
	{"Bend", "OR"}, {"Duluth", "MN"}, {"Eureka", "CA"}, {"Juneau", "AK"},
	{"Taos", "NM"}, {"Burlington", "VT"}, {"Marquette", "MI"}, {"Gatlinburg", "TN"},
	{"Estes Park", "CO"}, {"Bar Harbor", "ME"}, {"Port Angeles", "WA"}, {"Jackson", "WY"},
}

func main() {
	count := flag.Int("count", 50, "number of campgrounds to seed")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Wipe both tables before reseeding
	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Unscoped().Delete(&models.Review{}).Error; err != nil {
		log.Fatalf("Failed to clear reviews: %v", err)
	}
	if err := session.Unscoped().Delete(&models.Campground{}).Error; err != nil {
		log.Fatalf("Failed to clear campgrounds: %v", err)
	}

	useImageHost := imageHostReachable()
	if !useImageHost {
		log.Println("Image host unreachable, using the fallback image for every campground")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	inserted := 0
	for i := 0; i < *count; i++ {
		city := cities[rng.Intn(len(cities))]

		campground := models.Campground{
			Title:       fmt.Sprintf("%s %s", descriptors[rng.Intn(len(descriptors))], places[rng.Intn(len(places))]),
			Location:    fmt.Sprintf("%s, %s", city.City, city.State),
			Description: seedDescription,
			Price:       float64(rng.Intn(40) + 10),
			Image:       fallbackImage,
		}
		if useImageHost {
			campground.Image = fmt.Sprintf("%s/seed/camp-%d/800/600", imageHost, i)
		}

		if err := db.Create(&campground).Error; err != nil {
			log.Printf("Failed to insert campground %d: %v", i, err)
			continue
		}
		inserted++
	}

	log.Printf("Seeding complete: %d campgrounds inserted", inserted)
}

// imageHostReachable probes the image service once so seeded records do not
// all point at dead URLs when seeding offline.
func imageHostReachable() bool {
	client := resty.New().SetTimeout(5 * time.Second)
	resp, err := client.R().Head(imageHost + "/200")
	return err == nil && resp.StatusCode() < 500
}
