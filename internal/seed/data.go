package seed

type curatedListing struct {
	title       string
	description string
	location    string
	price       string
}

var curatedListings = []curatedListing{
	{
		title:       "Cozy Beachfront Villa",
		description: "Beautiful villa with stunning ocean views, private beach access, and modern amenities. Perfect for a romantic getaway or family vacation.",
		location:    "Malibu, California",
		price:       "250.00",
	},
	{
		title:       "Mountain Cabin Retreat",
		description: "Rustic cabin nestled in the mountains with hiking trails, fireplace, and breathtaking views. Ideal for nature lovers and outdoor enthusiasts.",
		location:    "Aspen, Colorado",
		price:       "180.00",
	},
	{
		title:       "Urban Loft Downtown",
		description: "Modern loft in the heart of the city with rooftop access, high-speed wifi, and walking distance to restaurants and entertainment.",
		location:    "New York, New York",
		price:       "320.00",
	},
	{
		title:       "Tropical Paradise Bungalow",
		description: "Overwater bungalow with crystal clear waters, snorkeling gear included, and 24/7 concierge service.",
		location:    "Bora Bora, French Polynesia",
		price:       "450.00",
	},
	{
		title:       "Historic Castle Suite",
		description: "Stay in a real castle with medieval architecture, grand halls, and beautiful gardens. A unique historical experience.",
		location:    "Edinburgh, Scotland",
		price:       "380.00",
	},
	{
		title:       "Desert Oasis Resort",
		description: "Luxury resort in the desert with spa services, pool, and spectacular sunset views. Perfect for relaxation and rejuvenation.",
		location:    "Scottsdale, Arizona",
		price:       "275.00",
	},
	{
		title:       "Lakeside Cottage",
		description: "Charming cottage by the lake with boat rental, fishing equipment, and peaceful surroundings.",
		location:    "Lake Tahoe, California",
		price:       "195.00",
	},
	{
		title:       "Penthouse City View",
		description: "Luxurious penthouse with panoramic city views, private terrace, and premium furnishings.",
		location:    "Chicago, Illinois",
		price:       "420.00",
	},
	{
		title:       "Vineyard Estate",
		description: "Beautiful estate in wine country with vineyard tours, wine tasting, and gourmet dining.",
		location:    "Napa Valley, California",
		price:       "350.00",
	},
	{
		title:       "Safari Lodge",
		description: "Authentic safari experience with game drives, wildlife viewing, and traditional African cuisine.",
		location:    "Serengeti, Tanzania",
		price:       "500.00",
	},
}

var extraLocations = []string{
	"Miami, Florida", "Barcelona, Spain", "Tokyo, Japan", "Sydney, Australia",
	"Paris, France", "London, England", "Rome, Italy", "Santorini, Greece",
	"Bali, Indonesia", "Dubai, UAE", "Cape Town, South Africa", "Rio de Janeiro, Brazil",
}

var propertyTypes = []string{
	"Modern Apartment", "Beach House", "City Studio", "Country House",
	"Luxury Villa", "Cozy Cabin", "Boutique Hotel", "Hostel Room",
	"Tree House", "Boat House", "Glamping Tent", "Traditional Riad",
}

var descriptionFragments = []string{
	"Spacious and comfortable accommodation with all modern amenities.",
	"Perfect location with easy access to local attractions and dining.",
	"Beautifully decorated space with attention to every detail.",
	"Ideal for couples, families, or business travelers.",
	"Exceptional hospitality and personalized service included.",
	"Unique architecture and design that captures local culture.",
	"Prime location in the most desirable part of the city.",
	"Peaceful retreat away from the hustle and bustle.",
	"Adventure base camp for exploring the surrounding area.",
	"Luxury meets comfort in this stunning property.",
}

// guests books from the first 12 entries; reviewers draw from all 15.
var guests = []string{
	"john.doe@email.com", "jane.smith@email.com", "mike.johnson@email.com",
	"sarah.wilson@email.com", "david.brown@email.com", "lisa.davis@email.com",
	"mark.taylor@email.com", "anna.martinez@email.com", "chris.garcia@email.com",
	"emily.rodriguez@email.com", "james.lee@email.com", "maria.gonzalez@email.com",
	"alex.thompson@email.com", "rachel.white@email.com", "kevin.harris@email.com",
}

var (
	bookingUsers  = guests[:12]
	reviewerUsers = guests
)

var positiveComments = []string{
	"Amazing place! The location was perfect and the host was very responsive.",
	"Beautiful property with stunning views. Would definitely stay again!",
	"Exceeded our expectations in every way. Highly recommended!",
	"Perfect for our family vacation. Clean, spacious, and well-equipped.",
	"The photos don't do it justice - it's even better in person!",
	"Great value for money. Everything was exactly as described.",
	"Fantastic hospitality and attention to detail. Five stars!",
	"Peaceful and relaxing atmosphere. Just what we needed for our getaway.",
	"Excellent location with easy access to attractions and restaurants.",
	"Modern amenities and comfortable furnishings. Very impressed!",
}

var neutralComments = []string{
	"Good overall experience. Property was as described.",
	"Nice place, though could use some minor updates.",
	"Decent stay. Location was convenient for our needs.",
	"Property was clean and functional. Good value.",
	"Average experience. Nothing special but no complaints.",
	"Acceptable accommodation for the price point.",
	"Met our basic needs for the trip. Would consider again.",
	"Fair property with standard amenities included.",
}

var negativeComments = []string{
	"Property wasn't as clean as expected. Disappointing experience.",
	"Location was noisier than anticipated. Difficult to rest.",
	"Several amenities weren't working during our stay.",
	"Property condition didn't match the photos shown.",
	"Poor communication from host. Issues weren't resolved quickly.",
	"Overpriced for what was offered. Expected more.",
}

// ratingWeights[i] is the relative weight of an (i+1)-star review.
var ratingWeights = [5]int{1, 2, 10, 25, 40}
