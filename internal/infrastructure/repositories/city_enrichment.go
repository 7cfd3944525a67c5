package repositories

import "github.com/karthikc1125/simple-login/domain"

// cityEnrichment carries the presentation attributes not kept in the
// cities table.
type cityEnrichment struct {
	CountryCode   string
	Region        string
	Timezone      string
	AreaKm2       float64
	DensityPerKm2 int
	Traffic       domain.CityTraffic
	QualityOfLife domain.CityQualityOfLife
	Climate       domain.CityClimate
	ImageURL      string
	Tagline       string
	Keywords      []string
}

var defaultEnrichment = cityEnrichment{
	Timezone: "UTC",
	Climate:  domain.CityClimate{Type: "Unknown"},
	Keywords: []string{},
}

// cityEnrichments is keyed by the seeded city IDs.
var cityEnrichments = map[string]cityEnrichment{
	"b7e9c1a0-0001-4a00-8000-000000000001": {
		CountryCode:   "JP",
		Region:        "Asia",
		Timezone:      "Asia/Tokyo",
		AreaKm2:       2194,
		DensityPerKm2: 37400000 / 2194,
		Traffic: domain.CityTraffic{
			CongestionIndex:      76,
			AvgCommuteMinutes:    45,
			PublicTransportScore: 95,
		},
		QualityOfLife: domain.CityQualityOfLife{
			SafetyIndex:        82,
			QualityOfLifeIndex: 88,
		},
		Climate: domain.CityClimate{
			Type:     "Humid subtropical",
			AvgHighC: 23,
			AvgLowC:  14,
		},
		Tagline:  "Neon lights, ancient temples, and endless energy.",
		Keywords: []string{"tech", "megacity", "nightlife", "sushi", "Japan"},
	},
	"b7e9c1a0-0002-4a00-8000-000000000002": {
		CountryCode:   "FR",
		Region:        "Europe",
		Timezone:      "Europe/Paris",
		AreaKm2:       105,
		DensityPerKm2: 11000000 / 105,
		Traffic: domain.CityTraffic{
			CongestionIndex:      68,
			AvgCommuteMinutes:    38,
			PublicTransportScore: 89,
		},
		QualityOfLife: domain.CityQualityOfLife{
			SafetyIndex:        71,
			QualityOfLifeIndex: 84,
		},
		Climate: domain.CityClimate{
			Type:     "Oceanic",
			AvgHighC: 20,
			AvgLowC:  11,
		},
		Tagline:  "Art, fashion, and romance along the Seine.",
		Keywords: []string{"art", "fashion", "France", "Eiffel Tower", "Europe"},
	},
	"b7e9c1a0-0003-4a00-8000-000000000003": {
		CountryCode:   "US",
		Region:        "North America",
		Timezone:      "America/New_York",
		AreaKm2:       789,
		DensityPerKm2: 18800000 / 789,
		Traffic: domain.CityTraffic{
			CongestionIndex:      83,
			AvgCommuteMinutes:    49,
			PublicTransportScore: 80,
		},
		QualityOfLife: domain.CityQualityOfLife{
			SafetyIndex:        64,
			QualityOfLifeIndex: 79,
		},
		Climate: domain.CityClimate{
			Type:     "Humid subtropical / continental",
			AvgHighC: 19,
			AvgLowC:  9,
		},
		Tagline:  "The city that never sleeps and never stops.",
		Keywords: []string{"finance", "Broadway", "USA", "skyscrapers", "North America"},
	},
	"b7e9c1a0-0004-4a00-8000-000000000004": {
		CountryCode:   "GB",
		Region:        "Europe",
		Timezone:      "Europe/London",
		AreaKm2:       1572,
		DensityPerKm2: 9000000 / 1572,
		Traffic: domain.CityTraffic{
			CongestionIndex:      72,
			AvgCommuteMinutes:    42,
			PublicTransportScore: 92,
		},
		QualityOfLife: domain.CityQualityOfLife{
			SafetyIndex:        78,
			QualityOfLifeIndex: 86,
		},
		Climate: domain.CityClimate{
			Type:     "Temperate oceanic",
			AvgHighC: 17,
			AvgLowC:  9,
		},
		Tagline:  "Royal history meets modern global finance.",
		Keywords: []string{"UK", "museums", "finance", "Europe", "Thames"},
	},
	"b7e9c1a0-0005-4a00-8000-000000000005": {
		CountryCode:   "AU",
		Region:        "Oceania",
		Timezone:      "Australia/Sydney",
		AreaKm2:       12368,
		DensityPerKm2: 5300000 / 12368,
		Traffic: domain.CityTraffic{
			CongestionIndex:      55,
			AvgCommuteMinutes:    35,
			PublicTransportScore: 78,
		},
		QualityOfLife: domain.CityQualityOfLife{
			SafetyIndex:        85,
			QualityOfLifeIndex: 90,
		},
		Climate: domain.CityClimate{
			Type:     "Subtropical",
			AvgHighC: 24,
			AvgLowC:  16,
		},
		Tagline:  "Sun, surf, and a skyline on the harbour.",
		Keywords: []string{"beach", "Australia", "harbour", "Oceania", "outdoors"},
	},
}
