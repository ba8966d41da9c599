package refdata

import "tabiplan/internal/model"

// locations is the per-city place pool the engine draws from when seeding
// and refining days. Not a POI database; the catalog is intentionally small
// and curated, one entry per well-known anchor place.
var locations = []Location{
	// Tokyo
	{ID: "tokyo-tsukiji", Name: "Tsukiji Outer Market", CityID: "tokyo", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 35.6654, Lng: 139.7707}, KidFriendly: true, MealType: "lunch"},
	{ID: "tokyo-sensoji", Name: "Senso-ji Temple", CityID: "tokyo", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 35.7148, Lng: 139.7967}, KidFriendly: true},
	{ID: "tokyo-meiji", Name: "Meiji Shrine", CityID: "tokyo", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 35.6764, Lng: 139.6993}, KidFriendly: true},
	{ID: "tokyo-ueno-park", Name: "Ueno Park", CityID: "tokyo", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 35.7156, Lng: 139.7745}, KidFriendly: true},
	{ID: "tokyo-ginza", Name: "Ginza Shopping District", CityID: "tokyo", Category: CategoryShopping, Coordinates: model.Coordinates{Lat: 35.6717, Lng: 139.7650}},
	{ID: "tokyo-akihabara", Name: "Akihabara Electric Town", CityID: "tokyo", Category: CategoryEntertainment, Coordinates: model.Coordinates{Lat: 35.7022, Lng: 139.7745}, KidFriendly: true},
	{ID: "tokyo-ramen-yokocho", Name: "Shinjuku Omoide Yokocho", CityID: "tokyo", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 35.6938, Lng: 139.6993}, MealType: "dinner"},
	{ID: "tokyo-onsen-spa", Name: "Ooedo Onsen Spa", CityID: "tokyo", Category: CategoryRest, Coordinates: model.Coordinates{Lat: 35.6191, Lng: 139.7753}, KidFriendly: true},
	// Yokohama
	{ID: "yokohama-chinatown", Name: "Yokohama Chinatown", CityID: "yokohama", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 35.4437, Lng: 139.6459}, KidFriendly: true, MealType: "lunch"},
	{ID: "yokohama-minatomirai", Name: "Minato Mirai Waterfront", CityID: "yokohama", Category: CategoryEntertainment, Coordinates: model.Coordinates{Lat: 35.4563, Lng: 139.6380}, KidFriendly: true},
	{ID: "yokohama-sankeien", Name: "Sankeien Garden", CityID: "yokohama", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 35.4167, Lng: 139.6578}, KidFriendly: true},
	// Kamakura
	{ID: "kamakura-daibutsu", Name: "Great Buddha of Kamakura", CityID: "kamakura", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 35.3167, Lng: 139.5358}, KidFriendly: true},
	{ID: "kamakura-hasedera", Name: "Hase-dera Temple", CityID: "kamakura", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 35.3126, Lng: 139.5333}},
	{ID: "kamakura-beach", Name: "Yuigahama Beach", CityID: "kamakura", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 35.3087, Lng: 139.5431}, KidFriendly: true},
	// Nikko
	{ID: "nikko-toshogu", Name: "Toshogu Shrine", CityID: "nikko", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 36.7581, Lng: 139.5986}},
	{ID: "nikko-kegon", Name: "Kegon Falls", CityID: "nikko", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 36.7380, Lng: 139.5028}, KidFriendly: true},
	// Sapporo
	{ID: "sapporo-ramen-alley", Name: "Ganso Ramen Alley", CityID: "sapporo", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 43.0547, Lng: 141.3530}, MealType: "dinner"},
	{ID: "sapporo-odori", Name: "Odori Park", CityID: "sapporo", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 43.0595, Lng: 141.3472}, KidFriendly: true},
	{ID: "sapporo-beer-museum", Name: "Sapporo Beer Museum", CityID: "sapporo", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 43.0718, Lng: 141.3668}},
	// Hakodate
	{ID: "hakodate-market", Name: "Hakodate Morning Market", CityID: "hakodate", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 41.7725, Lng: 140.7263}, KidFriendly: true, MealType: "breakfast"},
	{ID: "hakodate-ropeway", Name: "Mount Hakodate Ropeway", CityID: "hakodate", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 41.7593, Lng: 140.7044}, KidFriendly: true},
	// Otaru
	{ID: "otaru-canal", Name: "Otaru Canal", CityID: "otaru", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 43.1989, Lng: 140.9947}, KidFriendly: true},
	{ID: "otaru-sushi", Name: "Otaru Sushi Street", CityID: "otaru", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 43.1939, Lng: 140.9962}, MealType: "lunch"},
	// Sendai
	{ID: "sendai-zuihoden", Name: "Zuihoden Mausoleum", CityID: "sendai", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 38.2497, Lng: 140.8651}},
	{ID: "sendai-gyutan", Name: "Gyutan Street", CityID: "sendai", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 38.2601, Lng: 140.8821}, MealType: "lunch"},
	// Aomori
	{ID: "aomori-nebuta", Name: "Nebuta Museum Wa Rasse", CityID: "aomori", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 40.8316, Lng: 140.7353}, KidFriendly: true},
	// Nagoya
	{ID: "nagoya-castle", Name: "Nagoya Castle", CityID: "nagoya", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 35.1856, Lng: 136.8997}, KidFriendly: true},
	{ID: "nagoya-hitsumabushi", Name: "Atsuta Horaiken", CityID: "nagoya", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 35.1221, Lng: 136.9081}, MealType: "lunch"},
	// Kanazawa
	{ID: "kanazawa-kenrokuen", Name: "Kenrokuen Garden", CityID: "kanazawa", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 36.5621, Lng: 136.6625}, KidFriendly: true},
	{ID: "kanazawa-omicho", Name: "Omicho Market", CityID: "kanazawa", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 36.5714, Lng: 136.6559}, KidFriendly: true, MealType: "lunch"},
	{ID: "kanazawa-higashi-chaya", Name: "Higashi Chaya District", CityID: "kanazawa", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 36.5722, Lng: 136.6669}},
	// Takayama
	{ID: "takayama-old-town", Name: "Sanmachi Suji Old Town", CityID: "takayama", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 36.1424, Lng: 137.2595}},
	{ID: "takayama-morning-market", Name: "Miyagawa Morning Market", CityID: "takayama", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 36.1443, Lng: 137.2580}, KidFriendly: true, MealType: "breakfast"},
	// Matsumoto
	{ID: "matsumoto-castle", Name: "Matsumoto Castle", CityID: "matsumoto", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 36.2386, Lng: 137.9690}, KidFriendly: true},
	// Osaka
	{ID: "osaka-dotonbori", Name: "Dotonbori", CityID: "osaka", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 34.6687, Lng: 135.5013}, KidFriendly: true, MealType: "dinner"},
	{ID: "osaka-castle", Name: "Osaka Castle", CityID: "osaka", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 34.6873, Lng: 135.5262}, KidFriendly: true},
	{ID: "osaka-kuromon", Name: "Kuromon Ichiba Market", CityID: "osaka", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 34.6657, Lng: 135.5065}, KidFriendly: true, MealType: "lunch"},
	{ID: "osaka-umeda-sky", Name: "Umeda Sky Building", CityID: "osaka", Category: CategoryEntertainment, Coordinates: model.Coordinates{Lat: 34.7053, Lng: 135.4903}},
	{ID: "osaka-shinsekai", Name: "Shinsekai", CityID: "osaka", Category: CategoryEntertainment, Coordinates: model.Coordinates{Lat: 34.6525, Lng: 135.5063}},
	// Kyoto
	{ID: "kyoto-fushimi-inari", Name: "Fushimi Inari Shrine", CityID: "kyoto", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 34.9671, Lng: 135.7727}, KidFriendly: true},
	{ID: "kyoto-kinkakuji", Name: "Kinkaku-ji Golden Pavilion", CityID: "kyoto", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 35.0394, Lng: 135.7292}, KidFriendly: true},
	{ID: "kyoto-arashiyama", Name: "Arashiyama Bamboo Grove", CityID: "kyoto", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 35.0094, Lng: 135.6668}, KidFriendly: true},
	{ID: "kyoto-nishiki", Name: "Nishiki Market", CityID: "kyoto", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 35.0050, Lng: 135.7649}, KidFriendly: true, MealType: "lunch"},
	{ID: "kyoto-gion", Name: "Gion District", CityID: "kyoto", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 35.0037, Lng: 135.7751}},
	{ID: "kyoto-tea-house", Name: "Camellia Tea Ceremony", CityID: "kyoto", Category: CategoryRest, Coordinates: model.Coordinates{Lat: 34.9982, Lng: 135.7796}},
	// Nara
	{ID: "nara-park", Name: "Nara Deer Park", CityID: "nara", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 34.6851, Lng: 135.8430}, KidFriendly: true},
	{ID: "nara-todaiji", Name: "Todai-ji Temple", CityID: "nara", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 34.6890, Lng: 135.8398}, KidFriendly: true},
	// Kobe
	{ID: "kobe-beef", Name: "Kobe Beef Steakland", CityID: "kobe", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 34.6946, Lng: 135.1900}, MealType: "dinner"},
	{ID: "kobe-harborland", Name: "Kobe Harborland", CityID: "kobe", Category: CategoryShopping, Coordinates: model.Coordinates{Lat: 34.6800, Lng: 135.1860}, KidFriendly: true},
	// Hiroshima
	{ID: "hiroshima-peace-park", Name: "Peace Memorial Park", CityID: "hiroshima", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 34.3955, Lng: 132.4536}},
	{ID: "hiroshima-miyajima", Name: "Itsukushima Shrine", CityID: "hiroshima", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 34.2960, Lng: 132.3198}, KidFriendly: true},
	{ID: "hiroshima-okonomiyaki", Name: "Okonomimura", CityID: "hiroshima", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 34.3917, Lng: 132.4631}, KidFriendly: true, MealType: "dinner"},
	// Okayama
	{ID: "okayama-korakuen", Name: "Korakuen Garden", CityID: "okayama", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 34.6674, Lng: 133.9356}, KidFriendly: true},
	// Matsuyama
	{ID: "matsuyama-dogo", Name: "Dogo Onsen", CityID: "matsuyama", Category: CategoryRest, Coordinates: model.Coordinates{Lat: 33.8522, Lng: 132.7867}, KidFriendly: true},
	{ID: "matsuyama-castle", Name: "Matsuyama Castle", CityID: "matsuyama", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 33.8456, Lng: 132.7656}},
	// Takamatsu
	{ID: "takamatsu-ritsurin", Name: "Ritsurin Garden", CityID: "takamatsu", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 34.3283, Lng: 134.0434}, KidFriendly: true},
	{ID: "takamatsu-udon", Name: "Sanuki Udon Alley", CityID: "takamatsu", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 34.3500, Lng: 134.0460}, KidFriendly: true, MealType: "lunch"},
	// Fukuoka
	{ID: "fukuoka-yatai", Name: "Nakasu Yatai Stalls", CityID: "fukuoka", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 33.5930, Lng: 130.4070}, MealType: "dinner"},
	{ID: "fukuoka-ohori", Name: "Ohori Park", CityID: "fukuoka", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 33.5863, Lng: 130.3765}, KidFriendly: true},
	{ID: "fukuoka-canal-city", Name: "Canal City Hakata", CityID: "fukuoka", Category: CategoryShopping, Coordinates: model.Coordinates{Lat: 33.5899, Lng: 130.4115}, KidFriendly: true},
	// Nagasaki
	{ID: "nagasaki-glover", Name: "Glover Garden", CityID: "nagasaki", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 32.7338, Lng: 129.8696}},
	{ID: "nagasaki-champon", Name: "Shikairo", CityID: "nagasaki", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 32.7330, Lng: 129.8705}, MealType: "lunch"},
	// Kumamoto
	{ID: "kumamoto-castle", Name: "Kumamoto Castle", CityID: "kumamoto", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 32.8061, Lng: 130.7058}, KidFriendly: true},
	// Kagoshima
	{ID: "kagoshima-sakurajima", Name: "Sakurajima Ferry Viewpoint", CityID: "kagoshima", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 31.5833, Lng: 130.6000}, KidFriendly: true},
	// Naha
	{ID: "naha-shurijo", Name: "Shurijo Castle Park", CityID: "naha", Category: CategoryCulture, Coordinates: model.Coordinates{Lat: 26.2173, Lng: 127.7195}, KidFriendly: true},
	{ID: "naha-kokusai", Name: "Kokusai Street", CityID: "naha", Category: CategoryShopping, Coordinates: model.Coordinates{Lat: 26.2146, Lng: 127.6869}, KidFriendly: true},
	{ID: "naha-makishi", Name: "Makishi Public Market", CityID: "naha", Category: CategoryFood, Coordinates: model.Coordinates{Lat: 26.2140, Lng: 127.6885}, KidFriendly: true, MealType: "lunch"},
	// Ishigaki
	{ID: "ishigaki-kabira", Name: "Kabira Bay", CityID: "ishigaki", Category: CategoryNature, Coordinates: model.Coordinates{Lat: 24.4539, Lng: 124.1447}, KidFriendly: true},
}

// LocationsByCity returns the location pool for a city. Unknown cities get
// an empty pool, never an error.
func LocationsByCity(cityID string) []Location {
	var out []Location
	for _, l := range locations {
		if l.CityID == cityID {
			out = append(out, l)
		}
	}
	return out
}

// LocationByID looks up a single location
func LocationByID(id string) (Location, bool) {
	for _, l := range locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}
