package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
)

// predefinedCategories is the platform category catalog. Seeded once at
// startup; creators can still add custom categories at runtime.
var predefinedCategories = []entities.Category{
	{
		Name:        "Just Chatting",
		Slug:        "just-chatting",
		ImageURL:    "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=600&h=800&fit=crop",
		Description: "Casual conversations and hangouts",
	},
	{
		Name:        "Gaming",
		Slug:        "gaming",
		ImageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=600&h=800&fit=crop",
		Description: "General gaming content",
	},
	{
		Name:        "VALORANT",
		Slug:        "valorant",
		ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=600&h=800&fit=crop",
		Description: "Tactical FPS gameplay",
	},
	{
		Name:        "Counter-Strike",
		Slug:        "counter-strike",
		ImageURL:    "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=600&h=800&fit=crop",
		Description: "CS:GO and CS2 content",
	},
	{
		Name:        "League of Legends",
		Slug:        "league-of-legends",
		ImageURL:    "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=600&h=800&fit=crop",
		Description: "MOBA gameplay and strategy",
	},
	{
		Name:        "Minecraft",
		Slug:        "minecraft",
		ImageURL:    "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=600&h=800&fit=crop",
		Description: "Building, survival, and creativity",
	},
	{
		Name:        "Art",
		Slug:        "art",
		ImageURL:    "https://images.unsplash.com/photo-1513364776144-60967b0f800f?w=600&h=800&fit=crop",
		Description: "Digital art, drawing, and design",
	},
	{
		Name:        "Music",
		Slug:        "music",
		ImageURL:    "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=600&h=800&fit=crop",
		Description: "Live performances and music production",
	},
	{
		Name:        "Cooking",
		Slug:        "cooking",
		ImageURL:    "https://images.unsplash.com/photo-1556910103-1c02745aae4d?w=600&h=800&fit=crop",
		Description: "Culinary streams and recipes",
	},
	{
		Name:        "Fitness & Health",
		Slug:        "fitness-health",
		ImageURL:    "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=600&h=800&fit=crop",
		Description: "Workouts and wellness",
	},
	{
		Name:        "Travel & Outdoors",
		Slug:        "travel-outdoors",
		ImageURL:    "https://images.unsplash.com/photo-1501594907352-04cda38ebc29?w=600&h=800&fit=crop",
		Description: "Adventure and exploration",
	},
	{
		Name:        "Programming",
		Slug:        "programming",
		ImageURL:    "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=600&h=800&fit=crop",
		Description: "Coding, tutorials, and tech",
	},
	{
		Name:        "Horror",
		Slug:        "horror",
		ImageURL:    "https://images.unsplash.com/photo-1509248961158-e54f6934749c?w=600&h=800&fit=crop",
		Description: "Scary games and content",
	},
	{
		Name:        "Retro Gaming",
		Slug:        "retro-gaming",
		ImageURL:    "https://images.unsplash.com/photo-1550439062-609e1531270e?w=600&h=800&fit=crop",
		Description: "Classic games and nostalgia",
	},
	{
		Name:        "Strategy",
		Slug:        "strategy",
		ImageURL:    "https://images.unsplash.com/photo-1511882150382-421056c89033?w=600&h=800&fit=crop",
		Description: "RTS, turn-based, and tactical games",
	},
	{
		Name:        "Anime & Manga",
		Slug:        "anime-manga",
		ImageURL:    "https://images.unsplash.com/photo-1578632767115-351597cf2477?w=800&h=450&fit=crop",
		Description: "Discussion and art inspired by anime",
	},
}

// seedPredefinedCategories upserts the catalog by slug. Existing rows are
// left untouched so runtime edits survive restarts.
func seedPredefinedCategories(db *gorm.DB) error {
	for i := range predefinedCategories {
		category := predefinedCategories[i]
		category.IsPredefined = true
		category.IsActive = true

		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&category)

		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}
