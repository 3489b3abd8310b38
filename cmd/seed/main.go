// Seeds the database with sample postings so the UI is browsable locally.
// Existing jobs and applications are wiped first.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/talentbase/talentbase/internal/config"
	"github.com/talentbase/talentbase/internal/database"
	"github.com/talentbase/talentbase/internal/logger"
	"github.com/talentbase/talentbase/internal/models"
)

func strptr(s string) *string { return &s }

func main() {
	logger.Init()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	log.Info().Msg("seeding database")

	if err := db.Where("1 = 1").Delete(&models.Application{}).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to clear applications")
	}
	if err := db.Where("1 = 1").Delete(&models.Job{}).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to clear jobs")
	}

	jobs := []models.Job{
		{
			Title:      "Senior Frontend Developer",
			Department: "Engineering",
			Location:   "Casablanca (Hybrid)",
			Type:       models.JobTypeFullTime,
			Description: "We are looking for a Senior Frontend Developer to join our engineering team. " +
				"You will build and maintain user-facing features for our web applications, working closely " +
				"with design on pixel-perfect interfaces and with backend engineers on API integration.",
			Requirements: strptr("- 5+ years of experience with modern JavaScript frameworks\n" +
				"- Strong understanding of modern CSS\n" +
				"- Experience with state management and testing frameworks\n" +
				"- Excellent communication skills"),
			Benefits: strptr("- Competitive salary\n- Health insurance\n- Annual bonus\n" +
				"- Remote work flexibility\n- Professional development budget"),
			Salary: strptr("18,000 - 25,000 MAD/month"),
			Status: models.JobStatusOpen,
		},
		{
			Title:      "Backend Engineer",
			Department: "Engineering",
			Location:   "Rabat (Remote)",
			Type:       models.JobTypeFullTime,
			Description: "Join our backend team to build scalable APIs and services that power our platform. " +
				"We need engineers who are passionate about clean code, performance, and reliability.",
			Requirements: strptr("- 3+ years building production services\n" +
				"- Strong SQL skills (PostgreSQL preferred)\n" +
				"- Experience with RESTful API design\n" +
				"- Familiarity with cloud services and Docker"),
			Benefits: strptr("- Competitive salary\n- Equity package\n- Full remote work\n" +
				"- Home office stipend\n- Annual team retreats"),
			Salary: strptr("15,000 - 22,000 MAD/month"),
			Status: models.JobStatusOpen,
		},
		{
			Title:      "Product Designer",
			Department: "Design",
			Location:   "Marrakech (On-site)",
			Type:       models.JobTypeFullTime,
			Description: "We're looking for a creative Product Designer to help shape the future of our " +
				"product, owning the design process from research to final handoff.",
			Requirements: strptr("- 4+ years of product design experience\n" +
				"- Strong portfolio showcasing web/mobile design\n" +
				"- Experience with design systems and accessibility standards"),
			Benefits: strptr("- Creative work environment\n- Latest design tools and equipment\n" +
				"- Health and wellness benefits\n- Flexible hours"),
			Salary: strptr("14,000 - 20,000 MAD/month"),
			Status: models.JobStatusOpen,
		},
		{
			Title:      "Marketing Intern",
			Department: "Marketing",
			Location:   "Casablanca (On-site)",
			Type:       models.JobTypeInternship,
			Description: "Support the marketing team with campaign planning, content creation, and " +
				"social media management. A great first step into a growth-marketing career.",
			Requirements: strptr("- Currently enrolled in a marketing or business program\n" +
				"- Strong writing skills in French and English"),
			Benefits: strptr("- Monthly stipend\n- Mentorship program\n- Possibility of a full-time offer"),
			Status:   models.JobStatusOpen,
		},
		{
			Title:      "DevOps Engineer",
			Department: "Engineering",
			Location:   "Remote",
			Type:       models.JobTypeRemote,
			Description: "Own our deployment pipeline and cloud infrastructure. You will automate " +
				"everything that can be automated and keep our services observable and reliable.",
			Requirements: strptr("- Experience with Kubernetes and infrastructure as code\n" +
				"- Solid Linux fundamentals\n- On-call experience"),
			Salary: strptr("20,000 - 28,000 MAD/month"),
			Status: models.JobStatusDraft,
		},
		{
			Title:      "Customer Success Manager",
			Department: "Sales",
			Location:   "Casablanca (Hybrid)",
			Type:       models.JobTypeContract,
			Description: "Help our enterprise customers get the most out of the platform through " +
				"onboarding, training, and proactive account management.",
			Requirements: strptr("- 2+ years in customer success or account management\n" +
				"- Fluent French, Arabic, and English"),
			Status: models.JobStatusClosed,
		},
	}

	for i := range jobs {
		if err := db.Create(&jobs[i]).Error; err != nil {
			log.Fatal().Err(err).Str("title", jobs[i].Title).Msg("failed to insert job")
		}
	}

	log.Info().Int("jobs", len(jobs)).Msg("seed complete")
}
