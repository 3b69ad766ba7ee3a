package factories

import (
	"math/rand"

	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

var zones = []string{"Indiranagar", "Koramangala", "HSR Layout", "Whitefield", "Jayanagar"}

var dishesByCuisine = map[string][]string{
	"Indian":        {"Chicken Tikka Masala", "Paneer Butter Masala", "Veg Biryani", "Masala Dosa", "Chole Bhature"},
	"Italian":       {"Margherita Pizza", "Spaghetti Carbonara", "Lasagna", "Penne Arrabbiata"},
	"Chinese":       {"Kung Pao Chicken", "Veg Fried Rice", "Dumplings", "Mapo Tofu"},
	"Thai":          {"Pad Thai", "Green Curry", "Tom Yum Soup", "Mango Sticky Rice"},
	"Mexican":       {"Tacos", "Burrito Bowl", "Quesadilla", "Nachos"},
	"Japanese":      {"Sushi Roll", "Ramen", "Tempura", "Katsu Curry"},
	"American":      {"Classic Cheeseburger", "BBQ Ribs", "Hot Wings", "Mac and Cheese"},
	"Mediterranean": {"Falafel Wrap", "Hummus Platter", "Grilled Halloumi", "Shawarma"},
}

var tagPool = []string{"comfort", "street-food", "healthy", "protein", "crispy", "creamy", "tangy", "grilled", "classic", "house-special"}

type CatalogFactory struct{}

// CreateRestaurantItems generates one fictional restaurant's worth of
// catalog rows for seeding.
func (cf *CatalogFactory) CreateRestaurantItems(count int) []models.Item {
	cuisine := randomCuisine()
	restaurant := fake.Company().Name()
	zone := zones[rand.Intn(len(zones))]

	items := make([]models.Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, models.Item{
			ID:         cuid.New(),
			Restaurant: restaurant,
			Name:       randomDish(cuisine),
			Cuisine:    cuisine,
			BasePrice:  fake.Float64(2, 80, 450),
			Rating:     fake.Float64(1, 30, 50) / 10,
			EtaMin:     fake.IntBetween(15, 55),
			Veg:        fake.Bool(),
			Spice:      float64(fake.IntBetween(0, 5)),
			OilLevel:   randomOilLevel(),
			Tags:       randomTags(),
			Zone:       zone,
		})
	}
	return items
}

func randomCuisine() string {
	keys := make([]string, 0, len(dishesByCuisine))
	for k := range dishesByCuisine {
		keys = append(keys, k)
	}
	return keys[rand.Intn(len(keys))]
}

func randomDish(cuisine string) string {
	if dishes, ok := dishesByCuisine[cuisine]; ok {
		return dishes[rand.Intn(len(dishes))]
	}
	return "Special of the Day"
}

func randomOilLevel() models.OilLevel {
	levels := []models.OilLevel{models.OilLow, models.OilMedium, models.OilHigh}
	return levels[rand.Intn(len(levels))]
}

func randomTags() []string {
	count := rand.Intn(3) + 1
	tags := make([]string, count)
	for i := range tags {
		tags[i] = tagPool[rand.Intn(len(tagPool))]
	}
	return tags
}
