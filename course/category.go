package course

import (
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Category is a top-level marketplace taxonomy key.
type Category string

const (
	CategoryAcademics           Category = "academics"
	CategoryArts                Category = "arts"
	CategoryBusiness            Category = "business"
	CategoryCooking             Category = "cooking"
	CategoryCrafts              Category = "crafts"
	CategoryDesign              Category = "design"
	CategoryFitness             Category = "fitness"
	CategoryGaming              Category = "gaming"
	CategoryHealth              Category = "health"
	CategoryLanguage            Category = "language"
	CategoryLifestyle           Category = "lifestyle"
	CategoryMarketing           Category = "marketing"
	CategoryMusic               Category = "music"
	CategoryOther               Category = "other"
	CategoryPersonalDevelopment Category = "personal-development"
	CategoryPhotography         Category = "photography"
	CategoryProgramming         Category = "programming"
	CategoryTechnology          Category = "technology"
)

// Categories lists every taxonomy key in catalog order.
var Categories = []Category{
	CategoryAcademics,
	CategoryArts,
	CategoryBusiness,
	CategoryCooking,
	CategoryCrafts,
	CategoryDesign,
	CategoryFitness,
	CategoryGaming,
	CategoryHealth,
	CategoryLanguage,
	CategoryLifestyle,
	CategoryMarketing,
	CategoryMusic,
	CategoryOther,
	CategoryPersonalDevelopment,
	CategoryPhotography,
	CategoryProgramming,
	CategoryTechnology,
}

var categoryDisplayNames = map[Category]string{
	CategoryAcademics:           "Academics",
	CategoryArts:                "Arts",
	CategoryBusiness:            "Business",
	CategoryCooking:             "Cooking",
	CategoryCrafts:              "Crafts",
	CategoryDesign:              "Design",
	CategoryFitness:             "Fitness",
	CategoryGaming:              "Gaming",
	CategoryHealth:              "Health",
	CategoryLanguage:            "Language",
	CategoryLifestyle:           "Lifestyle",
	CategoryMarketing:           "Marketing",
	CategoryMusic:               "Music",
	CategoryOther:               "Other",
	CategoryPersonalDevelopment: "Personal Development",
	CategoryPhotography:         "Photography",
	CategoryProgramming:         "Programming",
	CategoryTechnology:          "Technology",
}

// DisplayName returns the human readable name of the category.
func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

func (c Category) String() string {
	return c.DisplayName()
}

// SubCategory is a refinement under a top-level category.
type SubCategory struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
}

// SubCategories maps categories to their refinements. Categories absent from
// the map have no refinements.
var SubCategories = map[Category][]SubCategory{
	CategoryAcademics: {
		{"mathematics", "Mathematics"},
		{"science", "Science"},
		{"history", "History"},
		{"geography", "Geography"},
		{"literature", "Literature"},
	},
	CategoryArts: {
		{"drawing", "Drawing"},
		{"painting", "Painting"},
		{"sculpture", "Sculpture"},
		{"photography", "Photography"},
		{"music", "Music"},
	},
	CategoryBusiness: {
		{"entrepreneurship", "Entrepreneurship"},
		{"management", "Management"},
		{"finance", "Finance"},
		{"marketing", "Marketing"},
		{"sales", "Sales"},
	},
	CategoryCooking: {
		{"baking", "Baking"},
		{"culinary-skills", "Culinary Skills"},
		{"international-cuisine", "International Cuisine"},
		{"nutrition", "Nutrition"},
		{"vegetarian", "Vegetarian"},
	},
	CategoryCrafts: {
		{"knitting", "Knitting"},
		{"crocheting", "Crocheting"},
		{"woodworking", "Woodworking"},
		{"jewelry-making", "Jewelry Making"},
		{"paper-crafts", "Paper Crafts"},
	},
	CategoryDesign: {
		{"branding", "Branding"},
		{"design-tools", "Design Tools"},
		{"graphic-design", "Graphic Design"},
		{"user-experience", "User Experience (UX)"},
		{"user-interface", "User Interface (UI)"},
		{"web-design", "Web Design"},
	},
	CategoryFitness: {
		{"yoga", "Yoga"},
		{"pilates", "Pilates"},
		{"strength-training", "Strength Training"},
		{"cardio", "Cardio"},
		{"nutrition", "Nutrition"},
	},
	CategoryGaming: {
		{"game-design", "Game Design"},
		{"game-development", "Game Development"},
		{"game-theory", "Game Theory"},
		{"esports", "Esports"},
		{"game-marketing", "Game Marketing"},
	},
	CategoryHealth: {
		{"mental-health", "Mental Health"},
		{"physical-health", "Physical Health"},
		{"nutrition", "Nutrition"},
		{"wellness", "Wellness"},
		{"fitness", "Fitness"},
	},
	CategoryLanguage: {
		{"english", "English"},
		{"spanish", "Spanish"},
		{"french", "French"},
		{"german", "German"},
		{"chinese", "Chinese"},
	},
	CategoryLifestyle: {
		{"travel", "Travel"},
		{"home-improvement", "Home Improvement"},
		{"gardening", "Gardening"},
		{"fashion", "Fashion"},
		{"beauty", "Beauty"},
	},
	CategoryMarketing: {
		{"advertising", "Advertising"},
		{"analytics", "Analytics"},
		{"content-marketing", "Content Marketing"},
		{"digital-marketing", "Digital Marketing"},
		{"social-media-marketing", "Social Media Marketing"},
		{"video-and-mobile-marketing", "Video & Mobile Marketing"},
	},
	CategoryMusic: {
		{"instrumental", "Instrumental"},
		{"vocal", "Vocal"},
		{"music-theory", "Music Theory"},
		{"music-production", "Music Production"},
		{"songwriting", "Songwriting"},
	},
	CategoryOther: {
		{"other", "Other"},
	},
	CategoryPersonalDevelopment: {
		{"self-improvement", "Self Improvement"},
		{"productivity", "Productivity"},
		{"leadership", "Leadership"},
		{"communication", "Communication"},
		{"career-development", "Career Development"},
	},
	CategoryProgramming: {
		{"algorithms", "Algorithms"},
		{"artificial-intelligence", "Artificial Intelligence"},
		{"automation-testing", "Automation Testing"},
		{"backend-development", "Backend Development"},
		{"big-data", "Big Data"},
		{"blockchain", "Blockchain"},
		{"business-intelligence", "Business Intelligence"},
		{"cloud-computing", "Cloud Computing"},
		{"competitive-programming", "Competitive Programming"},
		{"computer-networking", "Computer Networking"},
		{"computer-science", "Computer Science"},
		{"computer-vision", "Computer Vision"},
		{"cyber-security", "Cyber Security"},
		{"data-analysis", "Data Analysis"},
		{"data-engineering", "Data Engineering"},
		{"data-mining", "Data Mining"},
		{"data-science", "Data Science"},
		{"data-structures", "Data Structures"},
		{"data-visualization", "Data Visualization"},
		{"data-warehousing", "Data Warehousing"},
		{"database-management", "Database Management"},
		{"databases", "Databases"},
		{"deep-learning", "Deep Learning"},
		{"development-tools", "Development Tools"},
		{"devops", "DevOps"},
		{"ethical-hacking", "Ethical Hacking"},
		{"frontend-development", "Frontend Development"},
		{"game-development", "Game Development"},
		{"machine-learning", "Machine Learning"},
		{"mobile-app-development", "Mobile App Development"},
		{"natural-language-processing", "Natural Language Processing"},
		{"network-security", "Network Security"},
		{"penetration-testing", "Penetration Testing"},
		{"programming-languages", "Programming Languages"},
		{"reinforcement-learning", "Reinforcement Learning"},
		{"software-engineering", "Software Engineering"},
		{"software-testing", "Software Testing"},
		{"web-development", "Web Development"},
		{"web-scraping", "Web Scraping"},
	},
	CategoryTechnology: {
		{"software-development", "Software Development"},
		{"data-science", "Data Science"},
		{"cyber-security", "Cyber Security"},
		{"cloud-computing", "Cloud Computing"},
		{"artificial-intelligence", "Artificial Intelligence"},
	},
}

// Tags lists the free-form labels accepted when publishing a course.
var Tags = []string{
	"beginner",
	"intermediate",
	"advanced",
	"english",
	"spanish",
	"french",
	"german",
	"chinese",
	"yoga",
	"pilates",
	"strength-training",
	"cardio",
	"nutrition",
	"mental-health",
	"physical-health",
	"wellness",
	"fitness",
	"travel",
	"home-improvement",
	"gardening",
	"fashion",
	"beauty",
	"instrumental",
	"vocal",
	"music-theory",
	"music-production",
	"songwriting",
	"self-improvement",
	"productivity",
	"leadership",
	"communication",
	"career-development",
	"branding",
	"design-tools",
	"graphic-design",
	"user-experience",
}

// ResolveCategory matches user input against the taxonomy.
// On a miss it suggests the levenshtein-closest known category.
func ResolveCategory(input string) (Category, error) {
	candidate := Category(input)
	if _, ok := categoryDisplayNames[candidate]; ok {
		return candidate, nil
	}

	closest := lo.MinBy(Categories, func(a, b Category) bool {
		return levenshtein.Distance(input, string(a)) < levenshtein.Distance(input, string(b))
	})

	return "", fmt.Errorf("unknown category %q, did you mean %q?", input, string(closest))
}
