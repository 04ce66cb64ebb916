package dashboard

import (
	"time"

	"dashboard-demo/internal/domain/entity"
)

const day = 24 * time.Hour

// Seed tables. They are never mutated; accessors copy them into fresh records,
// resolving relative ages against the call's "now" and asset paths through the
// PublicURLBuilder.

type programSeed struct {
	slug          entity.ProgramSlug
	name          string
	description   string
	icon          string
	resourceCount int
	age           time.Duration
}

var programSeeds = []programSeed{
	{
		slug:          entity.SlugMTMTheFutureToday,
		name:          "MTM The Future Today",
		description:   "Team-based Medication Therapy Management with proven protocols and technician workflows.",
		icon:          "ClipboardCheck",
		resourceCount: 18,
		age:           3 * day,
	},
	{
		slug:          entity.SlugTimeMyMeds,
		name:          "TimeMyMeds",
		description:   "Appointment-based care via synchronization workflows that unlock clinical service delivery.",
		icon:          "CalendarCheck",
		resourceCount: 12,
		age:           10 * day,
	},
	{
		slug:          entity.SlugTestAndTreat,
		name:          "Test & Treat Services",
		description:   "CLIA-waived testing and treatment plans for Flu, Strep, and COVID-19.",
		icon:          "Stethoscope",
		resourceCount: 15,
		age:           6 * day,
	},
	{
		slug:          entity.SlugHbA1c,
		name:          "HbA1c Testing",
		description:   "POC A1c testing integrated with diabetes care and MTM workflows.",
		icon:          "Activity",
		resourceCount: 9,
		age:           18 * day,
	},
	{
		slug:          entity.SlugOralContraceptives,
		name:          "Oral Contraceptives",
		description:   "From patient intake to billing—simplified, step-by-step service workflows.",
		icon:          "TestTubes",
		resourceCount: 11,
		age:           12 * day,
	},
}

type quickAccessSeed struct {
	id       string
	title    string
	subtitle string
	cta      string
	icon     string
	path     string
}

var quickAccessSeeds = []quickAccessSeed{
	{
		id:       "qa-1",
		title:    "CMR Pharmacist Protocol",
		subtitle: "MTM Protocols",
		cta:      "Download",
		icon:     "FileText",
		path:     "mtmthefuturetoday/protocols/MTMTFT%20Pharmacist%20Protocol.pdf",
	},
	{
		id:       "qa-2",
		title:    "Technician Training Module 1",
		subtitle: "Onboarding",
		cta:      "Watch",
		icon:     "PlayCircle",
		path:     "mtmthefuturetoday/training/1%20Introduction%20to%20MTM.mp4",
	},
	{
		id:       "qa-3",
		title:    "A1c Patient Handout",
		subtitle: "Diabetes Care",
		cta:      "Download",
		icon:     "FileText",
		path:     "patienthandouts/Diabetes/Checking%20your%20Blood%20Sugar.pdf",
	},
	{
		id:       "qa-4",
		title:    "Flu Test Workflow",
		subtitle: "Test & Treat",
		cta:      "Download",
		icon:     "TestTubes",
		path:     "testandtreat/protocols/Test%20and%20Treat%20Protocol%20Manual.pdf",
	},
}

type bookmarkSeed struct {
	id      string
	name    string
	program entity.ProgramCode
	path    string
}

var bookmarkSeeds = []bookmarkSeed{
	{id: "bm-1", name: "Pharmacist CMR Worksheet", program: entity.CodeMTM, path: "mtmthefuturetoday/Forms/utilityforms/Pharmacist%20CMR%20Worksheet.pdf"},
	{id: "bm-2", name: "TimeMyMeds Protocol", program: entity.CodeTMM, path: "timemymeds/protocols/TimeMyMeds%20Protocol.pdf"},
	{id: "bm-3", name: "A1c Result CPT Code Billing", program: entity.CodeA1C, path: "hba1c/resources/A1c%20Result%20CPT%20Code%20Billing.pdf"},
	{id: "bm-4", name: "Strep Treatment – Peds", program: entity.CodeTNT, path: "testandtreat/forms/Flu/Flu%20Treatment-Peds.pdf"},
}

type activitySeed struct {
	id      string
	name    string
	program entity.ProgramCode
	age     time.Duration
	path    string
}

// Most recent first.
var activitySeeds = []activitySeed{
	{id: "ra-1", name: "CMR Interview Guide", program: entity.CodeMTM, age: time.Hour, path: "mtmthefuturetoday/resources/MTMTFT%20Pharmacist%20Form%20Explanations.pdf"},
	{id: "ra-2", name: "Sync Schedule Template", program: entity.CodeTMM, age: 5 * time.Hour, path: "timemymeds/forms/Enrollment%20Form.pdf"},
	{id: "ra-3", name: "A1c Tech Checklist", program: entity.CodeA1C, age: 22 * time.Hour, path: "hba1c/protocols/Hemoglobin%20A1c%20Testing%20Protocol.pdf"},
}

type announcementSeed struct {
	id    string
	title string
	body  string
	age   time.Duration
}

// Newest first.
var announcementSeeds = []announcementSeed{
	{id: "an-1", title: "New: Prescriber Communication Forms", body: "Standardized outreach templates now available in all MTM programs.", age: 0},
	{id: "an-2", title: "Sync Workflow Update", body: "Checklist updated for latest payer guidance. Please review by month end.", age: 4 * day},
}

func buildPrograms(now time.Time, _ PublicURLBuilder) []entity.ClinicalProgram {
	out := make([]entity.ClinicalProgram, 0, len(programSeeds))
	for _, s := range programSeeds {
		out = append(out, entity.ClinicalProgram{
			Slug:          s.slug,
			Name:          s.name,
			Description:   s.description,
			Icon:          s.icon,
			ResourceCount: s.resourceCount,
			LastUpdated:   now.Add(-s.age),
		})
	}
	return out
}

func buildQuickAccess(_ time.Time, urls PublicURLBuilder) []entity.QuickAccessItem {
	out := make([]entity.QuickAccessItem, 0, len(quickAccessSeeds))
	for _, s := range quickAccessSeeds {
		out = append(out, entity.QuickAccessItem{
			ID:       s.id,
			Title:    s.title,
			Subtitle: s.subtitle,
			CTA:      s.cta,
			Icon:     s.icon,
			URL:      urls.PublicURL(s.path),
			External: true,
		})
	}
	return out
}

func buildBookmarks(_ time.Time, urls PublicURLBuilder) []entity.ResourceItem {
	out := make([]entity.ResourceItem, 0, len(bookmarkSeeds))
	for _, s := range bookmarkSeeds {
		out = append(out, entity.ResourceItem{
			ID:      s.id,
			Name:    s.name,
			Program: s.program,
			URL:     urls.PublicURL(s.path),
		})
	}
	return out
}

func buildRecentActivity(now time.Time, urls PublicURLBuilder) []entity.RecentActivity {
	out := make([]entity.RecentActivity, 0, len(activitySeeds))
	for _, s := range activitySeeds {
		out = append(out, entity.RecentActivity{
			ID:         s.id,
			Name:       s.name,
			Program:    s.program,
			AccessedAt: now.Add(-s.age),
			URL:        urls.PublicURL(s.path),
		})
	}
	return out
}

func buildAnnouncements(now time.Time, _ PublicURLBuilder) []entity.Announcement {
	out := make([]entity.Announcement, 0, len(announcementSeeds))
	for _, s := range announcementSeeds {
		out = append(out, entity.Announcement{
			ID:    s.id,
			Title: s.title,
			Body:  s.body,
			Date:  now.Add(-s.age),
		})
	}
	return out
}
