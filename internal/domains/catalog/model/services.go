package model

import "github.com/shopspring/decimal"

const imageBase = "https://images.unsplash.com/"

func service(id, name string, category Category, description string, duration int, price int64, image string, popular bool) Service {
	return Service{
		ID:          id,
		Name:        name,
		Category:    category,
		Description: description,
		Price:       decimal.NewFromInt(price),
		Duration:    duration,
		Image:       imageBase + image + "?w=400&q=80",
		Popular:     popular,
	}
}

// SalonServices is the salon's published menu. Prices are USD, durations minutes.
func SalonServices() []Service {
	return []Service{
		service("hair-1", "Haircut & Style", CategoryHair,
			"Professional haircut with styling, tailored to your face shape and preferences",
			60, 65, "photo-1560066984-138dadb4c035", true),
		service("hair-2", "Hair Coloring", CategoryHair,
			"Full color service including consultation, application, and styling",
			120, 120, "photo-1562322140-8baeececf3df", false),
		service("hair-3", "Highlights & Balayage", CategoryHair,
			"Custom highlighting technique for natural, sun-kissed color",
			150, 150, "photo-1522337660859-02fbefca4702", true),
		service("hair-4", "Deep Conditioning Treatment", CategoryHair,
			"Intensive hydration treatment for damaged or dry hair",
			45, 45, "photo-1605497788044-5a32c7078486", false),
		service("hair-5", "Blowout & Styling", CategoryHair,
			"Professional blowout with heat styling for any occasion",
			45, 55, "photo-1560066984-138dadb4c035", false),

		service("nails-1", "Classic Manicure", CategoryNails,
			"Nail shaping, cuticle care, polish application",
			45, 35, "photo-1604654894610-df63bc536371", true),
		service("nails-2", "Gel Manicure", CategoryNails,
			"Long-lasting gel polish with UV curing",
			60, 50, "photo-1610992015732-2449b76344bc", false),
		service("nails-3", "Spa Pedicure", CategoryNails,
			"Luxurious foot soak, exfoliation, massage, and polish",
			75, 60, "photo-1632345031435-8727f6897d53", false),
		service("nails-4", "Acrylic Nails", CategoryNails,
			"Full set of durable acrylic nail extensions",
			90, 75, "photo-1519014816548-bf5fe059798b", false),

		service("makeup-1", "Bridal Makeup", CategoryMakeup,
			"Long-lasting wedding makeup with trial session",
			90, 150, "photo-1487412947147-5cebf100ffc2", true),
		service("makeup-2", "Special Event Makeup", CategoryMakeup,
			"Glamorous makeup for parties, proms, or photoshoots",
			60, 85, "photo-1516975080664-ed2fc6a32937", false),
		service("makeup-3", "Natural Makeup", CategoryMakeup,
			"Everyday natural look that enhances your features",
			45, 65, "photo-1512496015851-a90fb38ba796", false),
		service("makeup-4", "Makeup Lesson", CategoryMakeup,
			"One-on-one tutorial to learn professional techniques",
			90, 120, "photo-1522335789203-aabd1fc54bc9", false),

		service("spa-1", "Relaxation Massage", CategorySpa,
			"60-minute full body Swedish massage",
			60, 90, "photo-1544161515-4ab6ce6db874", true),
		service("spa-2", "Deep Tissue Massage", CategorySpa,
			"Therapeutic massage for muscle tension and pain relief",
			75, 110, "photo-1600334129128-685c5582fd35", false),
		service("spa-3", "Aromatherapy Massage", CategorySpa,
			"Massage with essential oils for relaxation and wellness",
			60, 95, "photo-1596755389378-c31d21fd1273", false),

		service("facial-1", "Classic Facial", CategoryFacial,
			"Deep cleansing, exfoliation, and hydration treatment",
			60, 80, "photo-1570172619644-dfd03ed5d881", true),
		service("facial-2", "Anti-Aging Facial", CategoryFacial,
			"Advanced treatment targeting fine lines and wrinkles",
			75, 120, "photo-1596755389378-c31d21fd1273", false),
		service("facial-3", "Acne Treatment Facial", CategoryFacial,
			"Deep pore cleansing and blemish control treatment",
			60, 95, "photo-1570172619644-dfd03ed5d881", false),
		service("facial-4", "Hydrating Facial", CategoryFacial,
			"Intense moisture boost for dry or dehydrated skin",
			60, 85, "photo-1596755389378-c31d21fd1273", false),
	}
}
