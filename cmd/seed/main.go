package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"securehub/internal/auth"
	"securehub/internal/config"
	"securehub/internal/db"
	"securehub/internal/model"
	"securehub/internal/repository"
)

var securityTips = []model.SecurityTip{
	{Content: "Use strong, unique passwords for each account and consider using a password manager.", Category: "Password Security"},
	{Content: "Enable two-factor authentication (2FA) whenever possible for an extra layer of security.", Category: "Account Security"},
	{Content: "Keep your software and operating systems up to date to protect against known vulnerabilities.", Category: "System Security"},
	{Content: "Be cautious of phishing emails - don't click on suspicious links or download unexpected attachments.", Category: "Email Security"},
	{Content: "Regularly backup your important data to prevent loss from ransomware or hardware failure.", Category: "Data Protection"},
}

var sampleArticles = []struct {
	title    string
	content  string
	category string
	tags     []string
	readTime int
}{
	{
		title:    "Password Security Best Practices",
		content:  "Creating strong passwords is crucial for online security. Use a combination of uppercase and lowercase letters, numbers, and special characters. Avoid using personal information or common words. Consider using a password manager to generate and store complex passwords securely.",
		category: model.CategoryCybersecurity,
		tags:     []string{"passwords", "security", "authentication"},
		readTime: 5,
	},
	{
		title:    "Recognizing and Avoiding Phishing Attacks",
		content:  "Phishing attacks remain one of the most common cyber threats. Learn to identify suspicious emails by checking sender addresses, looking for spelling errors, and being cautious of urgent requests. Never click on unexpected links or download attachments without verification.",
		category: model.CategoryCybersecurity,
		tags:     []string{"phishing", "email security", "cyber awareness"},
		readTime: 7,
	},
	{
		title:    "Protecting Your Privacy on Social Media",
		content:  "Social media platforms collect vast amounts of personal data. Review your privacy settings regularly, limit the personal information you share publicly, and be mindful of third-party applications requesting access to your profile. What you post today can follow you for years.",
		category: model.CategoryPrivacy,
		tags:     []string{"privacy", "social media", "data protection"},
		readTime: 6,
	},
	{
		title:    "Securing Your Home Network",
		content:  "Your home router is the gateway to every device you own. Change the default administrator credentials, use WPA3 encryption where available, keep the firmware updated, and consider a separate guest network for visitors and smart home devices to limit exposure.",
		category: model.CategoryNetworkSecurity,
		tags:     []string{"wifi", "router", "network security"},
		readTime: 8,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.ArticleLike{},
		&model.Comment{},
		&model.Bookmark{},
		&model.SecurityTip{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	tipRepo := repository.NewSecurityTipRepository(gormDB)

	admin := seedAdmin(ctx, userRepo)
	seedArticles(ctx, articleRepo, admin)
	seedTips(ctx, tipRepo)

	log.Println("Seed completed")
}

// seedAdmin ensures the admin account exists and returns it.
func seedAdmin(ctx context.Context, userRepo repository.UserRepository) *model.User {
	existing, err := userRepo.FindByEmail(ctx, "admin@example.com")
	if err == nil {
		log.Println("Admin user already exists")
		return existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	hash, err := auth.HashPassword("Admin123!")
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Println("Created admin user")
	return admin
}

func seedArticles(ctx context.Context, articleRepo repository.ArticleRepository, author *model.User) {
	count, err := articleRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count articles: %v", err)
	}
	if count > 0 {
		log.Printf("Articles already present (%d), skipping", count)
		return
	}

	for _, a := range sampleArticles {
		article := &model.Article{
			Title:    a.title,
			Content:  a.content,
			Author:   author.Snapshot(),
			Category: a.category,
			Tags:     a.tags,
			ReadTime: a.readTime,
		}
		if err := articleRepo.Create(ctx, article); err != nil {
			log.Fatalf("Failed to create article %q: %v", a.title, err)
		}
	}
	log.Printf("Added %d articles", len(sampleArticles))
}

func seedTips(ctx context.Context, tipRepo repository.SecurityTipRepository) {
	count, err := tipRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count security tips: %v", err)
	}
	if count > 0 {
		log.Printf("Security tips already present (%d), skipping", count)
		return
	}

	for i := range securityTips {
		tip := securityTips[i]
		if err := tipRepo.Create(ctx, &tip); err != nil {
			log.Fatalf("Failed to create security tip: %v", err)
		}
	}
	log.Printf("Added %d security tips", len(securityTips))
}
