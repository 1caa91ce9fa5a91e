package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	colmodels "astro-atlas/internal/collections/models"
	favmodels "astro-atlas/internal/favorites/models"
	objmodels "astro-atlas/internal/objects/models"
	usermodels "astro-atlas/internal/users/models"
	userservices "astro-atlas/internal/users/services"
	"astro-atlas/pkg/app"
	"astro-atlas/pkg/category"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the database with a starter data set: three users, a spread of
// favorites across categories, curated collections and a small catalog.
func main() {
	drop := flag.Bool("drop", true, "Clear seeded collections before importing")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	appCtx, err := app.InitializeApp("import")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer appCtx.Shutdown(ctx)

	db := appCtx.MongoDB.Database

	if *drop {
		for _, name := range []string{
			usermodels.UsersCollection,
			favmodels.FavoritesCollection,
			colmodels.CollectionsCollection,
			objmodels.ObjectsCollection,
		} {
			if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
				log.Fatalf("Failed to clear %s: %v", name, err)
			}
		}
	}

	if err := userservices.NewService(db).InitializeModule(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	now := time.Now()
	imported, failed := 0, 0

	for _, user := range sampleUsers() {
		user.CreatedAt = now
		user.UpdatedAt = now
		if _, err := db.Collection(usermodels.UsersCollection).InsertOne(ctx, user); err != nil {
			log.Printf("User import failed: %v (%s)", err, user.Email)
			failed++
			continue
		}
		imported++
	}

	for _, favorite := range sampleFavorites() {
		favorite.CreatedAt = now
		favorite.UpdatedAt = now
		if _, err := db.Collection(favmodels.FavoritesCollection).InsertOne(ctx, favorite); err != nil {
			log.Printf("Favorite import failed: %v (%s)", err, favorite.Name)
			failed++
			continue
		}
		imported++
	}

	for _, collection := range sampleCollections() {
		if _, err := db.Collection(colmodels.CollectionsCollection).InsertOne(ctx, collection); err != nil {
			log.Printf("Collection import failed: %v (%s)", err, collection.Name)
			failed++
			continue
		}
		imported++
	}

	for _, object := range sampleObjects() {
		if _, err := db.Collection(objmodels.ObjectsCollection).InsertOne(ctx, object); err != nil {
			log.Printf("Object import failed: %v (%s)", err, object.Name)
			failed++
			continue
		}
		imported++
	}

	fmt.Printf("Import complete: %d documents imported, %d failed\n", imported, failed)
}

func sampleUsers() []usermodels.User {
	return []usermodels.User{
		{
			Name:          "John Doe",
			Email:         "john@example.com",
			Password:      "$2a$10$rK8qN5xKp5j8WvN5xKp5j8WvN5xKp5j8WvN5xKp5j8Wv",
			Location:      "New York, USA",
			Language:      "en",
			Bio:           "Space enthusiast and amateur astronomer. Love exploring the cosmos!",
			DarkMode:      "enabled",
			Notifications: "all",
			Privacy:       "public",
			Level:         5,
			Achievements:  12,
			MemberSince:   "01/15/2024",
			IsActive:      true,
		},
		{
			Name:          "Sarah Johnson",
			Email:         "sarah.j@example.com",
			Password:      "$2a$10$rK8qN5xKp5j8WvN5xKp5j8WvN5xKp5j8WvN5xKp5j8Wv",
			Location:      "London, UK",
			Language:      "en",
			Bio:           "Astrophysics student passionate about black holes and quantum mechanics.",
			DarkMode:      "enabled",
			Notifications: "important",
			Privacy:       "friends",
			Level:         8,
			Achievements:  25,
			MemberSince:   "12/10/2023",
			IsActive:      true,
		},
		{
			Name:          "Michael Chen",
			Email:         "michael.chen@example.com",
			Password:      "$2a$10$rK8qN5xKp5j8WvN5xKp5j8WvN5xKp5j8WvN5xKp5j8Wv",
			Location:      "Tokyo, Japan",
			Language:      "en",
			Bio:           "Professional photographer specializing in astrophotography.",
			DarkMode:      "auto",
			Notifications: "all",
			Privacy:       "public",
			Level:         12,
			Achievements:  45,
			MemberSince:   "08/22/2023",
			IsActive:      true,
		},
	}
}

func ptr(f float64) *float64 { return &f }

func sampleFavorites() []favmodels.Favorite {
	return []favmodels.Favorite{
		{
			Name:        "Triangulum",
			Category:    category.Galaxy,
			Description: "Third-largest in Local Group.",
			Distance:    ptr(3000000),
			Discovered:  "1654-10-25",
			Image:       "https://astrobackyard.com/wp-content/uploads/2023/11/triangulum-galaxy.jpg",
		},
		{
			Name:        "Sombrero",
			Category:    category.Galaxy,
			Description: "Spiral with prominent dust lane.",
			Distance:    ptr(31100000),
			Discovered:  "1785-01-01",
			Image:       "https://media.cnn.com/api/v1/images/stellar/prod/webb-stsci-01jcgz71j2.jpg",
		},
		{
			Name:        "Whirlpool",
			Category:    category.Galaxy,
			Description: "Grand Design spiral.",
			Distance:    ptr(23100000),
			Discovered:  "1773-10-13",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/d/db/Messier51_sRGB.jpg",
		},
		{
			Name:        "Andromeda",
			Category:    category.Galaxy,
			Description: "Nearest large galaxy to the Milky Way.",
			Distance:    ptr(2537000),
			Discovered:  "0010-01-01",
			Image:       "https://example.com/andromeda.jpg",
		},
		{
			Name:        "Milky Way Center",
			Category:    category.Galaxy,
			Description: "Center region of our own galaxy.",
			Distance:    ptr(0),
			Discovered:  "Ancient",
			Image:       "https://example.com/milkywaycenter.jpg",
		},
		{
			Name:        "Mars",
			Category:    category.Planet,
			Mass:        "6.39e23",
			Distance:    ptr(1.52),
			Description: "The red planet, known for its iron oxide surface.",
			Discovered:  "1659-11-28",
			Image:       "https://images.unsplash.com/photo-1614732414444-096e5f1122d5?w=800",
		},
		{
			Name:        "Jupiter",
			Category:    category.Planet,
			Mass:        "1.898e27",
			Distance:    ptr(5.20),
			Description: "Largest planet in the solar system.",
			Discovered:  "1610-01-07",
			Image:       "https://images.unsplash.com/photo-1614732484003-ef9881555dc3?w=800",
		},
		{
			Name:        "Saturn",
			Category:    category.Planet,
			Mass:        "5.68e26",
			Distance:    ptr(9.58),
			Description: "Ringed gas giant, second-largest planet.",
			Discovered:  "1610-07-25",
			Image:       "https://images.unsplash.com/photo-1614732735907-7d9c3b0e3d5c?w=800",
		},
		{
			Name:        "Neptune",
			Category:    category.Planet,
			Mass:        "1.02e26",
			Distance:    ptr(30.07),
			Description: "An ice giant planet, farthest known in our system.",
			Discovered:  "1846-09-23",
			Image:       "https://example.com/neptune.jpg",
		},
		{
			Name:        "Sirius",
			Category:    category.Star,
			Description: "Brightest star in the night sky.",
			Distance:    ptr(8.6),
			Discovered:  "unknown",
			Image:       "https://images.unsplash.com/photo-1419242902214-272b3f66ee7a?w=800",
		},
		{
			Name:        "Betelgeuse",
			Category:    category.Star,
			Description: "Red supergiant star in the Orion constellation.",
			Distance:    ptr(642.5),
			Discovered:  "1600-01-01",
			Image:       "https://images.unsplash.com/photo-1464802686167-b939a6910659?w=800",
		},
		{
			Name:        "Proxima Centauri",
			Category:    category.Star,
			Description: "Closest known star to the Sun.",
			Distance:    ptr(4.24),
			Discovered:  "1915-10-18",
			Image:       "https://images.unsplash.com/photo-1534796636912-3b95b3ab5986?w=800",
		},
		{
			Name:        "Alpha Centauri",
			Category:    category.Star,
			Description: "Closest star system to the Solar System.",
			Distance:    ptr(4.37),
			Discovered:  "1839-01-01",
			Image:       "https://example.com/alphacentauri.jpg",
		},
		{
			Name:        "Vega",
			Category:    category.Star,
			Description: "Bright star in the Lyra constellation.",
			Distance:    ptr(25),
			Discovered:  "1850-01-01",
			Image:       "https://example.com/vega.jpg",
		},
	}
}

func sampleCollections() []colmodels.Collection {
	return []colmodels.Collection{
		{
			Name:         "Solar System Planets",
			Description:  "A curated list of the eight planets in our solar system, from Mercury to Neptune.",
			Items:        8,
			Shared:       true,
			Color:        "from-blue-500 to-cyan-500",
			Created:      "2024-08-15",
			LastModified: "2025-10-12",
		},
		{
			Name:         "Nearby Stars",
			Description:  "A collection featuring the closest stars to Earth, including Proxima Centauri and Sirius.",
			Items:        10,
			Shared:       false,
			Color:        "from-orange-400 to-yellow-400",
			Created:      "2024-05-10",
			LastModified: "2025-09-30",
		},
		{
			Name:         "Popular Galaxies",
			Description:  "Famous galaxies such as Andromeda, Sombrero, and Whirlpool that have captivated astronomers worldwide.",
			Items:        6,
			Shared:       true,
			Color:        "from-purple-600 to-pink-600",
			Created:      "2024-07-22",
			LastModified: "2025-09-25",
		},
		{
			Name:         "Messier Objects",
			Description:  "A collection of notable deep-sky objects cataloged by Charles Messier, including nebulae and star clusters.",
			Items:        15,
			Shared:       true,
			Color:        "from-green-500 to-emerald-500",
			Created:      "2024-04-12",
			LastModified: "2025-08-15",
		},
		{
			Name:         "Exoplanet Discoveries",
			Description:  "Discoveries of planets orbiting other stars, expanding our understanding of habitable worlds.",
			Items:        12,
			Shared:       false,
			Color:        "from-indigo-500 to-violet-600",
			Created:      "2024-09-05",
			LastModified: "2025-10-01",
		},
	}
}

func sampleObjects() []objmodels.CelestialObject {
	saturnDiscovered := time.Date(1610, time.July, 25, 0, 0, 0, 0, time.UTC)
	proximaDiscovered := time.Date(1915, time.October, 18, 0, 0, 0, 0, time.UTC)

	return []objmodels.CelestialObject{
		{
			Name:          "Saturn",
			Category:      category.Planet,
			Distance:      9.58,
			Description:   "Ringed gas giant and the second-largest planet in the solar system.",
			ImageURL:      "https://images.unsplash.com/photo-1614732735907-7d9c3b0e3d5c?w=800",
			Mass:          "5.68e26",
			DiscoveryDate: &saturnDiscovered,
			Attributes: &objmodels.Attributes{
				Planet: &objmodels.PlanetAttributes{Rings: true, Atmosphere: "hydrogen-helium", Moons: 146},
			},
		},
		{
			Name:          "Proxima Centauri",
			Category:      category.Star,
			Distance:      4.24,
			Description:   "Red dwarf star and the closest known star to the Sun.",
			ImageURL:      "https://images.unsplash.com/photo-1534796636912-3b95b3ab5986?w=800",
			DiscoveryDate: &proximaDiscovered,
			Attributes: &objmodels.Attributes{
				Star: &objmodels.StarAttributes{SpectralClass: "M5.5Ve", Luminosity: 0.0017},
			},
		},
		{
			Name:        "Andromeda",
			Category:    category.Galaxy,
			Distance:    2537000,
			Description: "Barred spiral galaxy and the nearest large galaxy to the Milky Way.",
			ImageURL:    "https://example.com/andromeda.jpg",
			Attributes: &objmodels.Attributes{
				Galaxy: &objmodels.GalaxyAttributes{Morphology: "SA(s)b"},
			},
		},
		{
			Name:        "Orion Nebula",
			Category:    category.Nebula,
			Distance:    1344,
			Description: "Diffuse nebula south of Orion's Belt, one of the brightest nebulae in the sky.",
			ImageURL:    "https://example.com/orion-nebula.jpg",
			Attributes: &objmodels.Attributes{
				Nebula: &objmodels.NebulaAttributes{NebulaType: "emission"},
			},
		},
		{
			Name:        "Halley's Comet",
			Category:    category.Comet,
			Distance:    35.1,
			Description: "Short-period comet visible from Earth every 75 to 79 years.",
			ImageURL:    "https://example.com/halley.jpg",
		},
	}
}
