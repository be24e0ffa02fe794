package catalog

// Curated Navi Mumbai reference data. Entries are append-only; IDs are stable
// and referenced by saved itineraries and place embeddings.

var places = []Place{
	{
		ID:          "p-001",
		Name:        "Belapur Fort",
		Category:    "Historical Sites",
		Description: "A historic fort with scenic views dating from the 17th century, overlooking the creek.",
		Image:       "https://images.unsplash.com/photo-1596402184320-417e7178b2cd?q=80&w=800",
		Rating:      4.5,
		Location:    "Belapur",
		Duration:    "2 hours",
		Featured:    true,
	},
	{
		ID:          "p-002",
		Name:        "Pandavkada Falls",
		Category:    "Historical Sites",
		Description: "A waterfall with mythological significance connected to the Pandavas from the Mahabharata.",
		Image:       "https://images.unsplash.com/photo-1505159940484-eb2b9f2588e2?q=80&w=800",
		Rating:      4.2,
		Location:    "Kharghar",
		Duration:    "3 hours",
	},
	{
		ID:          "p-003",
		Name:        "Navi Mumbai Science Centre",
		Category:    "Museums",
		Description: "Interactive exhibits for all ages focusing on science and technology.",
		Image:       "https://images.unsplash.com/photo-1518998053901-5348d3961a04?q=80&w=800",
		Rating:      4.0,
		Location:    "Vashi",
		Duration:    "4 hours",
		Featured:    true,
	},
	{
		ID:          "p-004",
		Name:        "Inorbit Mall",
		Category:    "Shopping",
		Description: "A premier shopping destination with international and domestic brands, entertainment and dining.",
		Image:       "https://images.unsplash.com/photo-1441986300917-64674bd600d8?q=80&w=800",
		Rating:      4.3,
		Location:    "Vashi",
		Duration:    "3 hours",
		Featured:    true,
	},
	{
		ID:          "p-005",
		Name:        "Central Park",
		Category:    "Parks & Gardens",
		Description: "A large park perfect for picnics, jogging and recreation with beautiful landscaping.",
		Image:       "https://images.unsplash.com/photo-1502082553048-f009c37129b9?q=80&w=800",
		Rating:      4.1,
		Location:    "Kharghar",
		Duration:    "2 hours",
	},
	{
		ID:          "p-006",
		Name:        "Mini Seashore",
		Category:    "Nature & Outdoors",
		Description: "A serene waterfront for relaxation and sunsets over the Arabian Sea.",
		Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?q=80&w=800",
		Rating:      4.4,
		Location:    "Vashi",
		Duration:    "2 hours",
		Featured:    true,
	},
	{
		ID:          "p-007",
		Name:        "Parsik Hill",
		Category:    "Nature & Outdoors",
		Description: "Panoramic views of the city and surrounding creeks, popular for hiking and photography.",
		Image:       "https://images.unsplash.com/photo-1564221710304-0b37c8b9d729?q=80&w=800",
		Rating:      4.2,
		Location:    "Belapur",
		Duration:    "3 hours",
	},
	{
		ID:          "p-008",
		Name:        "Raghuleela Mall",
		Category:    "Shopping",
		Description: "A variety of retail outlets, multiplex cinema and a food court with diverse options.",
		Image:       "https://images.unsplash.com/photo-1519389950473-47ba0277781c?q=80&w=800",
		Rating:      3.9,
		Location:    "Vashi",
		Duration:    "3 hours",
	},
	{
		ID:          "p-009",
		Name:        "APMC Market",
		Category:    "Shopping",
		Description: "A bustling wholesale market for fresh produce and spices with local specialties.",
		Image:       "https://images.unsplash.com/photo-1533900298318-6b8da08a523e?q=80&w=800",
		Rating:      4.0,
		Location:    "Vashi",
		Duration:    "2 hours",
	},
	{
		ID:          "p-010",
		Name:        "Sagar Vihar",
		Category:    "Parks & Gardens",
		Description: "A peaceful garden by the sea with walking paths and views of the Mumbai skyline.",
		Image:       "https://images.unsplash.com/photo-1519331379826-f10be5486c6f?q=80&w=800",
		Rating:      4.2,
		Location:    "Vashi",
		Duration:    "2 hours",
	},
	{
		ID:          "p-011",
		Name:        "Jewel of Navi Mumbai",
		Category:    "Parks & Gardens",
		Description: "A scenic lakeside spot for evening walks with landscaped gardens and lighting.",
		Image:       "https://images.unsplash.com/photo-1493246507139-91e8fad9978e?q=80&w=800",
		Rating:      4.4,
		Location:    "Nerul",
		Duration:    "2 hours",
		Featured:    true,
	},
	{
		ID:          "p-012",
		Name:        "Wonder Park",
		Category:    "Family Activities",
		Description: "An amusement park with rides, water activities and entertainment for all ages.",
		Image:       "https://images.unsplash.com/photo-1513889961551-628c1e5e2ee9?q=80&w=800",
		Rating:      4.0,
		Location:    "Nerul",
		Duration:    "4 hours",
	},
	{
		ID:          "p-013",
		Name:        "Nerul Balaji Temple",
		Category:    "Religious Sites",
		Description: "A beautiful South Indian temple with intricate architecture and spiritual significance.",
		Image:       "https://images.unsplash.com/photo-1561361058-c24e06f35045?q=80&w=800",
		Rating:      4.6,
		Location:    "Nerul",
		Duration:    "1 hour",
		Featured:    true,
	},
	{
		ID:          "p-014",
		Name:        "ISKCON Temple",
		Category:    "Religious Sites",
		Description: "Temple dedicated to Lord Krishna with regular spiritual programs and prasadam.",
		Image:       "https://images.unsplash.com/photo-1555791019-72d3af01da82?q=80&w=800",
		Rating:      4.5,
		Location:    "Kharghar",
		Duration:    "1 hour",
	},
	{
		ID:          "p-015",
		Name:        "Hanuman Temple",
		Category:    "Religious Sites",
		Description: "A serene place of worship dedicated to Lord Hanuman with traditional architecture.",
		Image:       "https://images.unsplash.com/photo-1560337349-a7a7c03a5c89?q=80&w=800",
		Rating:      4.1,
		Location:    "Panvel",
		Duration:    "1 hour",
	},
	{
		ID:          "p-016",
		Name:        "Rock Garden",
		Category:    "Parks & Gardens",
		Description: "A unique garden with rock formations, waterfalls and landscaped walkways.",
		Image:       "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?q=80&w=800",
		Rating:      4.3,
		Location:    "Kharghar",
		Duration:    "2 hours",
	},
	{
		ID:          "p-017",
		Name:        "Wonders Park",
		Category:    "Parks & Gardens",
		Description: "Features replicas of the Seven Wonders of the World along with recreational facilities.",
		Image:       "https://images.unsplash.com/photo-1563911302283-d2bc129e7570?q=80&w=800",
		Rating:      4.2,
		Location:    "Nerul",
		Duration:    "2 hours",
	},
	{
		ID:          "p-018",
		Name:        "DY Patil Stadium",
		Category:    "Family Activities",
		Description: "World-class sports venue hosting cricket matches and entertainment events.",
		Image:       "https://images.unsplash.com/photo-1540747913346-19e32dc3e97e?q=80&w=800",
		Rating:      4.5,
		Location:    "Nerul",
		Duration:    "4 hours",
	},
	{
		ID:          "p-019",
		Name:        "Snow World",
		Category:    "Family Activities",
		Description: "Indoor snow theme park offering a winter experience in Mumbai's climate.",
		Image:       "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?q=80&w=800",
		Rating:      4.1,
		Location:    "Vashi",
		Duration:    "2 hours",
	},
	{
		ID:          "p-020",
		Name:        "Smaaash",
		Category:    "Family Activities",
		Description: "Interactive gaming and entertainment center with virtual reality experiences.",
		Image:       "https://images.unsplash.com/photo-1511882150382-421056c89033?q=80&w=800",
		Rating:      4.0,
		Location:    "Vashi",
		Duration:    "3 hours",
	},
	{
		ID:          "p-021",
		Name:        "Utsav Chowk",
		Category:    "Cultural Experiences",
		Description: "A landmark plaza hosting cultural events, festivals and evening gatherings.",
		Image:       "https://images.unsplash.com/photo-1533105079780-92b9be482077?q=80&w=800",
		Rating:      4.2,
		Location:    "Kharghar",
		Duration:    "1 hour",
	},
	{
		ID:          "p-022",
		Name:        "Karnala Bird Sanctuary",
		Category:    "Nature & Outdoors",
		Description: "A protected sanctuary around Karnala fort with trekking trails and over 200 bird species.",
		Image:       "https://images.unsplash.com/photo-1444464666168-49d633b86797?q=80&w=800",
		Rating:      4.4,
		Location:    "Panvel",
		Duration:    "5 hours",
		Featured:    true,
	},
	{
		ID:          "p-023",
		Name:        "Kharghar Hills",
		Category:    "Adventure",
		Description: "Rolling hills popular for monsoon treks, paragliding and valley views.",
		Image:       "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=800",
		Rating:      4.3,
		Location:    "Kharghar",
		Duration:    "4 hours",
	},
	{
		ID:          "p-024",
		Name:        "Flamingo Sanctuary",
		Category:    "Nature & Outdoors",
		Description: "Seasonal wetland at DPS Lake where migratory flamingos gather between November and May.",
		Image:       "https://images.unsplash.com/photo-1497206365907-f5e630693df0?q=80&w=800",
		Rating:      4.5,
		Location:    "Seawoods",
		Duration:    "2 hours",
		Featured:    true,
	},
	{
		ID:          "p-025",
		Name:        "Seawoods Grand Central",
		Category:    "Shopping",
		Description: "A large transit-oriented mall with flagship stores, dining and a multiplex.",
		Image:       "https://images.unsplash.com/photo-1567958451986-2de427a4a0be?q=80&w=800",
		Rating:      4.2,
		Location:    "Seawoods",
		Duration:    "3 hours",
	},
	{
		ID:          "p-026",
		Name:        "Akshar Dhaam",
		Category:    "Cultural Experiences",
		Description: "A modern temple complex with intricate carvings depicting Hindu mythology and philosophy.",
		Image:       "https://images.unsplash.com/photo-1609619385002-f40f1f64e122?q=80&w=800",
		Rating:      4.3,
		Location:    "Airoli",
		Duration:    "2 hours",
	},
}

var restaurants = []Restaurant{
	{
		ID:          "r-001",
		Name:        "Fish Land",
		Cuisine:     "Seafood",
		Description: "Authentic seafood restaurant serving Konkan delicacies and freshly caught fish.",
		Image:       "https://images.unsplash.com/photo-1504674900247-0877df9cc836?q=80&w=800",
		Rating:      4.4,
		Location:    "Vashi",
		Price:       PriceMidRange,
	},
	{
		ID:          "r-002",
		Name:        "Pop Tate's",
		Cuisine:     "Continental",
		Description: "Popular for its sizzlers and continental dishes in a cozy atmosphere.",
		Image:       "https://images.unsplash.com/photo-1559847844-5315695dadae?q=80&w=800",
		Rating:      4.2,
		Location:    "Vashi",
		Price:       PriceMidRange,
	},
	{
		ID:          "r-003",
		Name:        "Urban Tadka",
		Cuisine:     "North Indian",
		Description: "North Indian delicacies in a modern setting with excellent ambiance.",
		Image:       "https://images.unsplash.com/photo-1585937421612-70a008356fbe?q=80&w=800",
		Rating:      4.3,
		Location:    "Vashi",
		Price:       PriceMidRange,
	},
	{
		ID:          "r-004",
		Name:        "Gajalee",
		Cuisine:     "Seafood",
		Description: "Upscale coastal dining known for crab tandoori and Malvani preparations.",
		Image:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?q=80&w=800",
		Rating:      4.5,
		Location:    "Vashi",
		Price:       PriceLuxury,
	},
	{
		ID:          "r-005",
		Name:        "The Irish House",
		Cuisine:     "Continental",
		Description: "Vibrant gastropub with an extensive beer selection and live sports screenings.",
		Image:       "https://images.unsplash.com/photo-1543007631-546a79f80ca3?q=80&w=800",
		Rating:      4.3,
		Location:    "Vashi",
		Price:       PriceLuxury,
	},
	{
		ID:          "r-006",
		Name:        "Spice Kitchen",
		Cuisine:     "Indian",
		Description: "Authentic Indian cuisine with a wide range of regional specialties.",
		Image:       "https://images.unsplash.com/photo-1565557623262-b51c2513a641?q=80&w=800",
		Rating:      4.1,
		Location:    "Belapur",
		Price:       PriceMidRange,
	},
	{
		ID:          "r-007",
		Name:        "Sigree Global Grill",
		Cuisine:     "Mughlai",
		Description: "Grill-on-table dining with an elaborate buffet of kebabs and curries.",
		Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=800",
		Rating:      4.4,
		Location:    "Kharghar",
		Price:       PriceLuxury,
	},
	{
		ID:          "r-008",
		Name:        "Cafe Safar",
		Cuisine:     "Cafe",
		Description: "Budget-friendly cafe near the hills serving chai, snacks and quick bites.",
		Image:       "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?q=80&w=800",
		Rating:      4.0,
		Location:    "Kharghar",
		Price:       PriceBudgetFriendly,
	},
	{
		ID:          "r-009",
		Name:        "Naivedhya Thali",
		Cuisine:     "Indian Thali",
		Description: "Unlimited traditional thali with rotating Maharashtrian and Gujarati dishes.",
		Image:       "https://images.unsplash.com/photo-1546833999-b9f581a1996d?q=80&w=800",
		Rating:      4.2,
		Location:    "Nerul",
		Price:       PriceBudgetFriendly,
	},
	{
		ID:          "r-010",
		Name:        "Barbeque Nation",
		Cuisine:     "Barbecue",
		Description: "Live grills at the table with a wide buffet spread and desserts.",
		Image:       "https://images.unsplash.com/photo-1529193591184-b1d58069ecdd?q=80&w=800",
		Rating:      4.3,
		Location:    "Nerul",
		Price:       PriceMidRange,
	},
	{
		ID:          "r-011",
		Name:        "Persian Darbar",
		Cuisine:     "Mughlai",
		Description: "A Panvel institution for biryani and Mughlai fare, open late.",
		Image:       "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?q=80&w=800",
		Rating:      4.2,
		Location:    "Panvel",
		Price:       PriceMidRange,
	},
	{
		ID:          "r-012",
		Name:        "Hotel Abhimaan",
		Cuisine:     "Maharashtrian",
		Description: "Home-style Maharashtrian meals, misal and thali at honest prices.",
		Image:       "https://images.unsplash.com/photo-1567337710282-00832b415979?q=80&w=800",
		Rating:      4.3,
		Location:    "Panvel",
		Price:       PriceBudgetFriendly,
	},
	{
		ID:          "r-013",
		Name:        "The Yellow Chilli",
		Cuisine:     "North Indian",
		Description: "Contemporary North Indian fine dining by a celebrity chef brand.",
		Image:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?q=80&w=800",
		Rating:      4.1,
		Location:    "Seawoods",
		Price:       PriceLuxury,
	},
	{
		ID:          "r-014",
		Name:        "Juice Junction",
		Cuisine:     "Cafe",
		Description: "Fresh juices, shakes and sandwiches near the station, quick and cheap.",
		Image:       "https://images.unsplash.com/photo-1613478223719-2ab802602423?q=80&w=800",
		Rating:      3.9,
		Location:    "Airoli",
		Price:       PriceBudgetFriendly,
	},
}
