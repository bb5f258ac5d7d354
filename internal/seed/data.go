package seed

type SeedUser struct {
	Username string
	Email    string
}

type ProfileTemplate struct {
	Status      string
	Institution string
	JobTitle    string
	Skills      []string
}

// SeedPassword is the shared placeholder password for every fixture account.
const SeedPassword = "password123"

// PlaceholderFileURL stands in for every attachment body; the pipeline never
// touches real file storage.
const PlaceholderFileURL = "uploads/placeholder.bin"

var Users = []SeedUser{
	{Username: "amara.eze", Email: "amara.eze@example.com"},
	{Username: "koray.demir", Email: "koray.demir@example.com"},
	{Username: "lena.vogel", Email: "lena.vogel@example.com"},
	{Username: "jide.adeyemi", Email: "jide.adeyemi@example.com"},
	{Username: "sara.haddad", Email: "sara.haddad@example.com"},
	{Username: "tomas.rivera", Email: "tomas.rivera@example.com"},
	{Username: "mei.chen", Email: "mei.chen@example.com"},
	{Username: "ivan.petrov", Email: "ivan.petrov@example.com"},
	{Username: "nadia.karim", Email: "nadia.karim@example.com"},
	{Username: "paul.okafor", Email: "paul.okafor@example.com"},
	{Username: "emma.lindqvist", Email: "emma.lindqvist@example.com"},
	{Username: "yusuf.traore", Email: "yusuf.traore@example.com"},
}

// AdminAssignments maps the three fixture admin accounts to their role names.
// A missing user or role is logged and skipped, never fatal.
var AdminAssignments = map[string]string{
	"amara.eze":   "super_admin",
	"koray.demir": "support_admin",
	"lena.vogel":  "finance_admin",
}

// ProfileTemplates rotate by index across seeded users. The duplicate-casing
// and Arabic skill entries are deliberate; they exercise the skill dedup
// normalization downstream.
var ProfileTemplates = []ProfileTemplate{
	{
		Status:      "student",
		Institution: "University of Lagos",
		JobTitle:    "Data Analyst",
		Skills:      []string{"Python", "Statistics", "SQL"},
	},
	{
		Status:      "professional",
		Institution: "Middle East Technical University",
		JobTitle:    "Software Engineer",
		Skills:      []string{"python", "Go", "Databases"},
	},
	{
		Status:      "student",
		Institution: "Cairo University",
		JobTitle:    "Technical Writer",
		Skills:      []string{"برمجة", "Academic Writing", "Editing"},
	},
	{
		Status:      "professional",
		Institution: "Technical University of Munich",
		JobTitle:    "Data Analyst",
		Skills:      []string{"Machine Learning", "statistics", "البرمجة"},
	},
	{
		Status:      "graduate",
		Institution: "University of Nairobi",
		JobTitle:    "Research Assistant",
		Skills:      []string{"Research", "SPSS", "Academic Writing"},
	},
}

var Institutions = []string{
	"University of Lagos",
	"Cairo University",
	"Technical University of Munich",
	"University of Nairobi",
	"Middle East Technical University",
}

var (
	ServiceStatuses     = []string{"active", "paused", "draft"}
	RequestStatuses     = []string{"open", "in_review", "closed"}
	OfferStatuses       = []string{"pending", "declined", "withdrawn"}
	NegotiationStatuses = []string{"open", "agreed", "abandoned"}
	DisputeStatuses     = []string{"open", "under_review", "resolved"}
)

// PurchaseStatuses is the full purchase workflow enum. The seeder assigns one
// directly per row; it does not simulate multi-step transitions.
var PurchaseStatuses = []string{
	"pending",
	"in_progress",
	"submitted",
	"completed",
	"disputed_by_buyer",
	"disputed_by_provider",
	"buyer_rejected",
	"provider_rejected",
}

var ServiceTitles = []string{
	"Calculus problem-set walkthrough",
	"Research paper structure review",
	"SQL query tuning session",
	"Statistics exam preparation",
	"Thesis proofreading",
	"Machine learning project coaching",
	"Essay outline and feedback",
	"Circuit analysis tutoring",
}

var RequestTitles = []string{
	"Need help with linear algebra assignment",
	"Literature review for psychology thesis",
	"Debug my data structures project",
	"Translate abstract to Spanish",
	"Build a survey analysis in SPSS",
	"Review my accounting coursework",
}

var WorkTitles = []string{
	"Published survey analysis for a regional NGO",
	"Open-source contribution: CSV import library",
	"Award-winning undergraduate thesis",
	"Conference poster on network optimization",
	"Course companion site for intro statistics",
}

var MessageBodies = []string{
	"Hi, thanks for reaching out!",
	"Could you share the assignment brief?",
	"I can have a first draft ready by Friday.",
	"That deadline works for me.",
	"Just uploaded the revised version.",
	"Can we adjust the scope slightly?",
	"Looks good, please proceed.",
	"I left a few comments on the document.",
	"Payment sent, thank you!",
	"Let me know if anything is unclear.",
}

var DisputeReasons = []string{
	"Deliverable did not match the agreed scope",
	"Provider stopped responding after payment",
	"Work was submitted past the deadline",
	"Quality below the advertised standard",
}

var RatingComments = []string{
	"Great communication and quality work.",
	"Delivered on time, exactly as described.",
	"Good result, minor revisions needed.",
	"Very knowledgeable, would hire again.",
	"Average experience, slow responses.",
}

type FileKind struct {
	Type      string
	Extension string
}

var FileKinds = []FileKind{
	{Type: "document", Extension: "pdf"},
	{Type: "document", Extension: "docx"},
	{Type: "image", Extension: "png"},
	{Type: "image", Extension: "jpg"},
	{Type: "spreadsheet", Extension: "xlsx"},
	{Type: "archive", Extension: "zip"},
}
