package catalogRepo

import "findmylocal/models"

func provider(name string, experience, jobs int, languages []string, phone string) models.ProviderInfo {
	return models.ProviderInfo{
		Name:          name,
		Experience:    experience,
		CompletedJobs: jobs,
		Verified:      true,
		Languages:     languages,
		Phone:         phone,
		WhatsApp:      phone,
	}
}

// SeedServices returns a fresh copy of the launch catalog.
func SeedServices() []models.Service {
	return []models.Service{
		{
			ID:           "1",
			Name:         "Professional Plumbing & Leak Repair",
			Category:     models.CategoryPlumber,
			Location:     "Andheri West, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusApproved,
			Rating:       4.6,
			Distance:     2.3,
			Tags:         []string{"Emergency", "24x7", "Home Service"},
			Pricing:      models.PriceRange(300, 1200, "per visit"),
			Provider:     provider("Ramesh Patil", 8, 430, []string{"Hindi", "English", "Marathi"}, "+91 98765 43210"),
			Description:  "Expert plumbing services for homes and offices including leak repair, pipe installation, and bathroom fittings. We use high-quality materials and provide warranty on all work.",
			Images:       []string{"/services/plumber-2.webp", "/services/plumber-1.jpg"},
			Inclusions:   []string{"Initial inspection", "Basic tools & equipment", "Minor repairs", "Post-service cleanup"},
		},
		{
			ID:           "2",
			Name:         "Mathematics Home Tuition (Class 8–12)",
			Category:     models.CategoryTutor,
			Location:     "Goregaon East, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusApproved,
			Rating:       4.9,
			Distance:     3.1,
			Tags:         []string{"CBSE", "ICSE", "1-on-1"},
			Pricing:      models.FixedPrice(4000, "per month"),
			Provider:     provider("Anita Sharma", 6, 120, []string{"English", "Hindi"}, "+91 98765 43211"),
			Description:  "Personalized mathematics tuition with weekly assessments and doubt-solving sessions. Experienced in both CBSE and ICSE boards with proven track record of improving grades.",
			Images:       []string{"/services/tutor-1.png", "/services/tutor-2.png"},
			Inclusions:   []string{"Weekly assessments", "Study material", "Doubt-solving sessions", "Progress reports"},
		},
		{
			ID:           "3",
			Name:         "Home Electrical Repairs & Installation",
			Category:     models.CategoryElectrician,
			Location:     "Bandra, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusRejected,
			Rating:       4.7,
			Distance:     1.8,
			Tags:         []string{"Licensed", "Same Day", "Commercial"},
			Pricing:      models.PriceRange(250, 800, "per hour"),
			Provider:     provider("Suresh Kumar", 12, 890, []string{"Hindi", "English"}, "+91 98765 43212"),
			Description:  "Licensed electrician providing safe and reliable electrical services including wiring, fixture installation, and troubleshooting for residential and commercial properties.",
			Images:       []string{"/services/electrician-1.jpg", "/services/electrician-2.webp"},
			Inclusions:   []string{"Safety inspection", "Quality materials", "Warranty on work", "Emergency support"},
		},
		{
			ID:           "4",
			Name:         "Car Service & Maintenance",
			Category:     models.CategoryMechanic,
			Location:     "Powai, Mumbai",
			Availability: models.AvailabilityBusy,
			Status:       models.StatusApproved,
			Rating:       4.5,
			Distance:     4.2,
			Tags:         []string{"All Brands", "Doorstep", "Genuine Parts"},
			Pricing:      models.PriceRange(1500, 5000, "per service"),
			Provider:     provider("AutoCare Solutions", 10, 650, []string{"Hindi", "English", "Marathi"}, "+91 98765 43213"),
			Description:  "Complete car servicing including oil change, brake inspection, AC service, and general maintenance. We use genuine parts and provide doorstep service.",
			Images:       []string{"/services/mechanic-1.webp", "/services/mechanic-2.jpg"},
			Inclusions:   []string{"Multi-point inspection", "Oil & filter change", "Brake check", "AC inspection"},
		},
		{
			ID:           "5",
			Name:         "Interior Painting Services",
			Category:     models.CategoryPainter,
			Location:     "Malad West, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusApproved,
			Rating:       4.8,
			Distance:     2.9,
			Tags:         []string{"Premium Paints", "Texture", "Waterproofing"},
			Pricing:      models.PriceRange(18, 35, "per sq.ft"),
			Provider:     provider("ColorCraft Studios", 15, 340, []string{"Hindi", "English"}, "+91 98765 43214"),
			Description:  "Professional interior and exterior painting services with premium quality paints. We offer texture painting, waterproofing, and wood polishing services.",
			Images:       []string{"/services/painter-1.jpeg", "/services/painter-2.webp"},
			Inclusions:   []string{"Color consultation", "Surface preparation", "Premium paints", "Furniture covering"},
		},
		{
			ID:           "6",
			Name:         "Carpentry & Furniture Repair",
			Category:     models.CategoryCarpenter,
			Location:     "Kandivali, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusRejected,
			Rating:       4.6,
			Distance:     3.5,
			Tags:         []string{"Custom Furniture", "Modular", "Repair"},
			Pricing:      models.PriceRange(400, 1000, "per day"),
			Provider:     provider("Vijay Woodworks", 20, 520, []string{"Hindi", "Marathi"}, "+91 98765 43215"),
			Description:  "Expert carpentry services for custom furniture, modular kitchens, wardrobes, and all types of wood work repairs. Quality craftsmanship guaranteed.",
			Images:       []string{"/services/carpenter-1.jpg", "/services/carpenter-2.jpg"},
			Inclusions:   []string{"Free consultation", "Quality materials", "Custom designs", "Installation"},
		},
		{
			ID:           "7",
			Name:         "Physics & Chemistry Coaching",
			Category:     models.CategoryTutor,
			Location:     "Thane West, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusApproved,
			Rating:       4.8,
			Distance:     5.2,
			Tags:         []string{"JEE", "NEET", "Board Exams"},
			Pricing:      models.FixedPrice(6000, "per month"),
			Provider:     provider("Dr. Rahul Roy", 8, 200, []string{"English", "Hindi", "Malayalam"}, "+91 98765 43216"),
			Description:  "Specialized coaching for Physics and Chemistry for JEE/NEET preparation and board exams. Small batch sizes ensure personalized attention.",
			Images:       []string{"/services/tutor-3.png", "/services/tutor-4.jpg"},
			Inclusions:   []string{"Study material", "Mock tests", "Doubt sessions", "Performance tracking"},
		},
		{
			ID:           "8",
			Name:         "AC Repair & Servicing",
			Category:     models.CategoryElectrician,
			Location:     "Vashi, Navi Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusApproved,
			Rating:       4.4,
			Distance:     6.1,
			Tags:         []string{"All Brands", "Gas Refill", "Installation"},
			Pricing:      models.PriceRange(400, 2500, "per service"),
			Provider:     provider("CoolTech Services", 7, 380, []string{"Hindi", "English"}, "+91 98765 43217"),
			Description:  "Complete AC services including repair, gas refilling, installation, and annual maintenance. We service all major brands.",
			Images:       []string{"/services/ac-repair-1.webp", "/services/ac-repair-2.png"},
			Inclusions:   []string{"Deep cleaning", "Gas check", "Filter cleaning", "Performance check"},
		},
		{
			ID:           "9",
			Name:         "Two-Wheeler Repair",
			Category:     models.CategoryMechanic,
			Location:     "Dadar, Mumbai",
			Availability: models.AvailabilityOffline,
			Status:       models.StatusRejected,
			Rating:       4.3,
			Distance:     2.1,
			Tags:         []string{"Bikes", "Scooters", "Doorstep"},
			Pricing:      models.PriceRange(200, 1500, "per service"),
			Provider:     provider("QuickFix Garage", 5, 290, []string{"Hindi", "Marathi"}, "+91 98765 43218"),
			Description:  "Comprehensive two-wheeler repair and maintenance services. We handle all brands of motorcycles and scooters with doorstep service Available.",
			Images:       []string{"/services/two-wheeler-1.webp", "/services/two-wheeler-2.jpg"},
			Inclusions:   []string{"Oil change", "Brake service", "Chain adjustment", "General checkup"},
		},
		{
			ID:           "10",
			Name:         "Bathroom Renovation",
			Category:     models.CategoryPlumber,
			Location:     "Chembur, Mumbai",
			Availability: models.AvailabilityBusy,
			Status:       models.StatusApproved,
			Rating:       4.7,
			Distance:     4.5,
			Tags:         []string{"Complete Renovation", "Premium Fittings", "Waterproofing"},
			Pricing:      models.PriceRange(25000, 80000, "per bathroom"),
			Provider:     provider("HomeStyle Renovations", 12, 180, []string{"Hindi", "English", "Marathi"}, "+91 98765 43219"),
			Description:  "Complete bathroom renovation services including plumbing, tiling, waterproofing, and fitting installation. Transform your bathroom with our expert team.",
			Images:       []string{"/services/bathroom-1.jpg", "/services/bathroom-2.jpg"},
			Inclusions:   []string{"Design consultation", "Demolition", "Waterproofing", "Premium fittings", "Tiling"},
		},
		{
			ID:           "11",
			Name:         "Deep Home Cleaning Services",
			Category:     models.CategoryCleaner,
			Location:     "Borivali West, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusApproved,
			Rating:       4.5,
			Distance:     3.8,
			Tags:         []string{"Deep Cleaning", "Sanitization", "Eco-Friendly"},
			Pricing:      models.PriceRange(2000, 6000, "per visit"),
			Provider:     provider("SparkleClean Team", 6, 410, []string{"Hindi", "English"}, "+91 98765 43220"),
			Description:  "Professional deep cleaning services for homes including kitchen, bathroom, sofa, and floor cleaning using safe and eco-friendly products.",
			Images:       []string{"/services/cleaner-1.png", "/services/cleaner-2.jpg"},
			Inclusions:   []string{"Kitchen cleaning", "Bathroom sanitization", "Floor mopping", "Waste disposal"},
		},
		{
			ID:           "12",
			Name:         "Gardening & Lawn Maintenance",
			Category:     models.CategoryGardener,
			Location:     "Powai, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusRejected,
			Rating:       4.5,
			Distance:     4.0,
			Tags:         []string{"Lawn Care", "Plant Maintenance", "Seasonal"},
			Pricing:      models.PriceRange(800, 2500, "per visit"),
			Provider:     provider("GreenGrow Services", 10, 280, []string{"Hindi", "Marathi"}, "+91 98765 43221"),
			Description:  "Professional gardening services for homes and societies including lawn maintenance, pruning, and plant care.",
			Images:       []string{"/services/gardener-2.webp", "/services/gardener-1.avif"},
			Inclusions:   []string{"Pruning", "Watering", "Soil treatment", "Waste removal"},
		},
		{
			ID:           "13",
			Name:         "Home Cleaning & Deep Cleaning Services",
			Category:     models.CategoryCleaner,
			Location:     "Bandra, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusApproved,
			Rating:       4.7,
			Distance:     2.8,
			Tags:         []string{"Deep Clean", "Regular Service", "Eco-friendly"},
			Pricing:      models.PriceRange(500, 1800, "per session"),
			Provider:     provider("Clean Home Services", 7, 520, []string{"Hindi", "English", "Gujarati"}, "+91 98765 43222"),
			Description:  "Professional home cleaning services including deep cleaning, carpet shampooing, and kitchen deep cleaning. We use eco-friendly products safe for families and pets.",
			Images:       []string{"/services/cleaner-1.png", "/services/cleaner-2.jpg"},
			Inclusions:   []string{"Vacuuming", "Mopping", "Dusting", "Bathroom cleaning", "Kitchen sanitization"},
		},
		{
			ID:           "14",
			Name:         "Electrical Repair & Installation",
			Category:     models.CategoryElectrician,
			Location:     "Dadar East, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusApproved,
			Rating:       4.8,
			Distance:     3.5,
			Tags:         []string{"24x7", "Emergency", "Certified"},
			Pricing:      models.PriceRange(400, 1500, "per visit"),
			Provider:     provider("Rajesh Electrical Works", 12, 650, []string{"Hindi", "Marathi", "English"}, "+91 98765 43223"),
			Description:  "Licensed electrician providing electrical repairs, maintenance, wiring, and LED lighting installation. All work done with safety certificates and guarantees.",
			Images:       []string{"/services/electrician-1.jpg", "/services/electrician-2.webp"},
			Inclusions:   []string{"Troubleshooting", "Safety inspection", "Wire & cable supply", "Labor & installation"},
		},
		{
			ID:           "15",
			Name:         "Car Repair & Maintenance Services",
			Category:     models.CategoryMechanic,
			Location:     "Mahim, Mumbai",
			Availability: models.AvailabilityAvailable,
			Status:       models.StatusApproved,
			Rating:       4.6,
			Distance:     4.2,
			Tags:         []string{"Engine Repair", "Servicing", "Quick Fix"},
			Pricing:      models.PriceRange(500, 3000, "per job"),
			Provider:     provider("AutoCare Solutions", 11, 720, []string{"Hindi", "Marathi", "English"}, "+91 98765 43225"),
			Description:  "Professional car mechanic offering engine repairs, general maintenance, brake servicing, and battery replacement. We use genuine spare parts and provide warranty on all repairs.",
			Images:       []string{"/services/mechanic-1.webp", "/services/mechanic-2.jpg"},
			Inclusions:   []string{"Free diagnostics", "Genuine parts", "Labor & installation", "Warranty card"},
		},
	}
}
