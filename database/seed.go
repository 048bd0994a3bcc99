package database

import (
	"context"
	"fmt"

	"github.com/errands-sys/portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

func strPtr(s string) *string { return &s }

var seedProjects = []models.Project{
	{
		Title:       "E-Commerce Platform Modernization",
		Description: "Complete overhaul of legacy e-commerce system with modern React frontend and microservices architecture. Increased performance by 300% and reduced cart abandonment by 45%.",
		Image:       "https://images.unsplash.com/photo-1661956602116-aa6865609028?w=800&q=80",
		Category:    "Web Development",
	},
	{
		Title:       "Mobile Banking App",
		Description: "Secure mobile banking application with biometric authentication, real-time transactions, and seamless UX. Serving 500K+ active users with 99.9% uptime.",
		Image:       "https://images.unsplash.com/photo-1563986768609-322da13575f3?w=800&q=80",
		Category:    "Mobile Development",
	},
	{
		Title:       "AI-Powered Analytics Dashboard",
		Description: "Enterprise analytics platform with machine learning insights, predictive analytics, and customizable reports. Processes 10M+ data points daily.",
		Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&q=80",
		Category:    "Data Analytics",
	},
	{
		Title:       "Healthcare Management System",
		Description: "Comprehensive healthcare platform connecting patients, doctors, and hospitals. Features telemedicine, appointment scheduling, and electronic health records.",
		Image:       "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=800&q=80",
		Category:    "Healthcare Tech",
	},
	{
		Title:       "Supply Chain Optimization Tool",
		Description: "Real-time supply chain tracking and optimization system. Reduced delivery times by 35% and costs by 20% for logistics companies.",
		Image:       "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?w=800&q=80",
		Category:    "Enterprise Software",
	},
	{
		Title:       "Social Media Marketing Platform",
		Description: "All-in-one social media management tool with AI-powered content suggestions, scheduling, and analytics across multiple platforms.",
		Image:       "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=800&q=80",
		Category:    "Marketing Tech",
	},
}

var seedVideos = []models.Video{
	{
		Title:       "Company Overview 2024",
		URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Description: "Discover Errands: our journey, values, and vision for transforming businesses through technology innovation.",
	},
	{
		Title:       "Client Success Stories",
		URL:         "https://www.youtube.com/watch?v=jNQXAC9IVRw",
		Description: "Hear from our satisfied clients about their experience working with Errands and the results we delivered.",
	},
	{
		Title:       "Product Demo: Analytics Platform",
		URL:         "https://www.youtube.com/watch?v=9bZkp7q19f0",
		Description: "Complete walkthrough of our AI-powered analytics dashboard and its powerful features.",
	},
	{
		Title:       "Software Development Tips",
		URL:         "https://www.tiktok.com/@mattupham/video/7300000000000000000",
		Description: "Quick tips for software developers and coding best practices.",
	},
	{
		Title:       "Tech Career Advice",
		URL:         "https://www.tiktok.com/@misodope/video/7310000000000000000",
		Description: "Career guidance for software engineers and tech professionals.",
	},
	{
		Title:       "AI & Business Automation",
		URL:         "https://www.tiktok.com/@brandnat/video/7320000000000000000",
		Description: "Leveraging AI for business automation and productivity.",
	},
}

var seedContacts = []models.Contact{
	{
		Name:    "Sarah Johnson",
		Email:   "sarah.johnson@techcorp.com",
		Message: "Hi! I'm interested in discussing a potential web development project for our company. We need to modernize our customer portal. Could we schedule a call this week?",
	},
	{
		Name:    "Michael Chen",
		Email:   "mchen@startupventures.io",
		Message: "We're a startup looking for a development partner to build our MVP. Your portfolio looks impressive! What's your availability for a new project starting next month?",
	},
	{
		Name:    "Emma Williams",
		Email:   "emma.w@healthcare-solutions.com",
		Message: "I saw your healthcare management system project. We need something similar for our hospital network. Can you provide more details about your healthcare expertise?",
	},
	{
		Name:    "David Rodriguez",
		Email:   "david.r@ecommerce-plus.com",
		Message: "Interested in your e-commerce platform modernization services. Our current system is 10 years old and needs a complete overhaul. What's the typical timeline for such projects?",
	},
	{
		Name:    "Lisa Anderson",
		Email:   "l.anderson@marketing-agency.net",
		Message: "We need a custom analytics dashboard for our clients. Your AI-powered analytics project looks exactly like what we need. Let's discuss customization options!",
	},
}

var seedContactInfo = []models.ContactInfo{
	{Type: models.ContactInfoTypePhone, Value: "01559828884", Label: strPtr("Main Office"), DisplayOrder: 1},
	{Type: models.ContactInfoTypePhone, Value: "01557554433", Label: strPtr("Sales Department"), DisplayOrder: 2},
	{Type: models.ContactInfoTypeEmail, Value: "info@errands-sys.com", Label: strPtr("General Inquiries"), DisplayOrder: 1},
	{Type: models.ContactInfoTypeEmail, Value: "sales@errands-sys.com", Label: strPtr("Sales Team"), DisplayOrder: 2},
}

// Seed destructively clears all four tables and repopulates them with the
// development fixture dataset. Local development only; assumes exclusive
// access to the store while running.
func Seed(ctx context.Context, db Database) error {
	log.Info().Msg("Clearing existing data...")
	for _, table := range schemaTables {
		if _, err := db.Store().Execute(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	log.Info().Msg("Seeding projects...")
	for i := range seedProjects {
		if _, err := db.ProjectRepo().Add(ctx, &seedProjects[i]); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", seedProjects[i].Title, err)
		}
	}

	log.Info().Msg("Seeding videos...")
	for i := range seedVideos {
		if _, err := db.VideoRepo().Add(ctx, &seedVideos[i]); err != nil {
			return fmt.Errorf("failed to seed video %q: %w", seedVideos[i].Title, err)
		}
	}

	log.Info().Msg("Seeding contacts...")
	for i := range seedContacts {
		if _, err := db.ContactRepo().Add(ctx, &seedContacts[i]); err != nil {
			return fmt.Errorf("failed to seed contact %q: %w", seedContacts[i].Name, err)
		}
	}

	log.Info().Msg("Seeding contact info...")
	for i := range seedContactInfo {
		if _, err := db.ContactInfoRepo().Add(ctx, &seedContactInfo[i]); err != nil {
			return fmt.Errorf("failed to seed contact info %q: %w", seedContactInfo[i].Value, err)
		}
	}

	log.Info().
		Int("projects", len(seedProjects)).
		Int("videos", len(seedVideos)).
		Int("contacts", len(seedContacts)).
		Int("contactInfo", len(seedContactInfo)).
		Msg("Database seeded successfully")
	return nil
}
