package schema

// Requirement is a boolean eligibility predicate over language/topic groups.
type Requirement string

// All eligibility requirements supported.
const (
	RequiresBackendLangs     Requirement = "backend_langs"
	RequiresFrontendLangs    Requirement = "frontend_langs"
	RequiresDataScienceLangs Requirement = "data_science_langs"
	RequiresDevOpsTopics     Requirement = "devops_topics"
	RequiresSecurityTopics   Requirement = "security_topics"
)

// Archetype is one developer-persona definition. The classification
// algorithm is a single generic routine over these records; adding a new
// archetype means adding an entry here, not touching the algorithm.
type Archetype struct {
	ID          string
	Name        string
	Description string

	// Weights maps dimensions to signed weights. Positive weights are
	// normalized by their sum; negative weights are applied afterwards as
	// raw penalties.
	Weights map[Dimension]float64

	// MinScore is the eligibility floor for the weighted score.
	MinScore float64

	Requires []Requirement
}

// FallbackArchetypeID is the catch-all used when no archetype qualifies.
const FallbackArchetypeID = "code_explorer"

// DefaultArchetypes ships the nine personas, in classification order.
var DefaultArchetypes = []Archetype{
	{
		ID:          "ai_indie_hacker",
		Name:        "AI-Driven Indie Hacker",
		Description: "High AI usage, high activity, low collaboration",
		Weights: map[Dimension]float64{
			AISavvinessDim:    0.4,
			ActivityDim:       0.35,
			CollaborationDim:  -0.2,
			StackDiversityDim: 0.05,
		},
		MinScore: 55,
	},
	{
		ID:          "open_source_maintainer",
		Name:        "Open Source Maintainer",
		Description: "High collaboration, high activity, community-focused developer",
		Weights: map[Dimension]float64{
			CollaborationDim:  0.4,
			ActivityDim:       0.35,
			StackDiversityDim: 0.15,
			AISavvinessDim:    0.1,
		},
		MinScore: 50,
	},
	{
		ID:          "full_stack_polyglot",
		Name:        "Full-Stack Polyglot",
		Description: "High stack diversity, well-rounded skills across many technologies",
		Weights: map[Dimension]float64{
			StackDiversityDim: 0.45,
			ActivityDim:       0.25,
			CollaborationDim:  0.15,
			AISavvinessDim:    0.15,
		},
		MinScore: 45,
	},
	{
		ID:          "backend_architect",
		Name:        "Backend Architect",
		Description: "Systems-focused with strong backend and infrastructure skills",
		Weights: map[Dimension]float64{
			ActivityDim:       0.3,
			StackDiversityDim: 0.25,
			CollaborationDim:  0.25,
			AISavvinessDim:    0.2,
		},
		MinScore: 40,
		Requires: []Requirement{RequiresBackendLangs},
	},
	{
		ID:          "frontend_craftsman",
		Name:        "Frontend Craftsman",
		Description: "UI/UX focused developer with modern frontend framework expertise",
		Weights: map[Dimension]float64{
			StackDiversityDim: 0.3,
			ActivityDim:       0.3,
			CollaborationDim:  0.2,
			AISavvinessDim:    0.2,
		},
		MinScore: 40,
		Requires: []Requirement{RequiresFrontendLangs},
	},
	{
		ID:          "devops_specialist",
		Name:        "DevOps & Infrastructure Expert",
		Description: "Infrastructure-focused with CI/CD, cloud, and containerization expertise",
		Weights: map[Dimension]float64{
			StackDiversityDim: 0.3,
			ActivityDim:       0.3,
			CollaborationDim:  0.2,
			AISavvinessDim:    0.2,
		},
		MinScore: 40,
		Requires: []Requirement{RequiresDevOpsTopics},
	},
	{
		ID:          "data_scientist",
		Name:        "Data Science Specialist",
		Description: "Python/R focused with ML/AI framework usage",
		Weights: map[Dimension]float64{
			AISavvinessDim:    0.35,
			StackDiversityDim: 0.25,
			ActivityDim:       0.25,
			CollaborationDim:  0.15,
		},
		MinScore: 40,
		Requires: []Requirement{RequiresDataScienceLangs},
	},
	{
		ID:          "security_sentinel",
		Name:        "Security Sentinel",
		Description: "Security-focused developer with vulnerability research or security tooling",
		Weights: map[Dimension]float64{
			ActivityDim:       0.3,
			StackDiversityDim: 0.25,
			CollaborationDim:  0.25,
			AISavvinessDim:    0.2,
		},
		MinScore: 35,
		Requires: []Requirement{RequiresSecurityTopics},
	},
	{
		ID:          "rising_developer",
		Name:        "Rising Developer",
		Description: "Growing activity, learning phase, building momentum",
		Weights: map[Dimension]float64{
			ActivityDim:       0.4,
			StackDiversityDim: 0.25,
			AISavvinessDim:    0.2,
			CollaborationDim:  0.15,
		},
		MinScore: 20,
	},
	{
		ID:          FallbackArchetypeID,
		Name:        "Code Explorer",
		Description: "Diverse interests, experimental approach, exploring the ecosystem",
		Weights: map[Dimension]float64{
			StackDiversityDim: 0.3,
			ActivityDim:       0.3,
			AISavvinessDim:    0.2,
			CollaborationDim:  0.2,
		},
		MinScore: 0,
	},
}

// Language group indicators for archetype requirements.
var (
	BackendLanguages = map[string]struct{}{
		"Python": {}, "Java": {}, "Go": {}, "Rust": {}, "C#": {}, "C++": {},
		"Ruby": {}, "PHP": {}, "Kotlin": {}, "Scala": {}, "Elixir": {},
	}

	FrontendLanguages = map[string]struct{}{
		"TypeScript": {}, "JavaScript": {}, "CSS": {}, "HTML": {},
		"Svelte": {}, "Vue": {}, "Dart": {},
	}

	DataScienceLanguages = map[string]struct{}{
		"Python": {}, "Jupyter Notebook": {}, "R": {}, "Julia": {},
	}

	DevOpsTopics = map[string]struct{}{
		"docker": {}, "kubernetes": {}, "terraform": {}, "ansible": {},
		"ci-cd": {}, "devops": {}, "aws": {}, "gcp": {}, "azure": {},
		"helm": {}, "jenkins": {}, "github-actions": {},
	}

	SecurityTopics = map[string]struct{}{
		"security": {}, "vulnerability": {}, "pentest": {}, "ctf": {},
		"exploit": {}, "cybersecurity": {}, "infosec": {},
		"cryptography": {}, "owasp": {},
	}
)

// KnownFrameworks is the framework vocabulary matched against repo topics.
var KnownFrameworks = map[string]struct{}{
	"react": {}, "nextjs": {}, "vue": {}, "angular": {}, "svelte": {},
	"fastapi": {}, "django": {}, "flask": {}, "express": {}, "nestjs": {},
	"pytorch": {}, "tensorflow": {}, "langchain": {}, "docker": {},
	"kubernetes": {}, "tailwindcss": {}, "graphql": {}, "postgres": {},
	"mongodb": {}, "spring": {}, "rails": {}, "laravel": {}, "gin": {},
	"actix": {}, "rocket": {}, "deno": {}, "bun": {}, "remix": {},
	"nuxt": {}, "astro": {}, "solidjs": {}, "htmx": {}, "prisma": {},
	"drizzle": {}, "supabase": {}, "firebase": {}, "vercel": {},
	"aws": {}, "gcp": {}, "azure": {},
}

// AITopics is the AI/ML topic vocabulary used by the AI-savviness dimension.
var AITopics = map[string]struct{}{
	"machine-learning": {}, "deep-learning": {}, "artificial-intelligence": {},
	"ai": {}, "ml": {}, "nlp": {}, "llm": {}, "gpt": {}, "transformers": {},
	"neural-network": {}, "computer-vision": {}, "data-science": {},
	"chatgpt": {}, "copilot": {}, "generative-ai": {}, "rag": {},
	"langchain": {}, "openai": {}, "huggingface": {}, "stable-diffusion": {},
}

// AILanguages are languages associated with AI/ML work.
var AILanguages = map[string]struct{}{
	"Python": {}, "Jupyter Notebook": {}, "R": {}, "Julia": {},
}

// Ecosystem groups used by primary-ecosystem detection, checked in order:
// data-science, full-stack, frontend, backend, devops, then language fallback.
var (
	WebFrameworks = map[string]struct{}{
		"react": {}, "nextjs": {}, "vue": {}, "angular": {}, "svelte": {},
		"remix": {}, "nuxt": {}, "astro": {},
	}

	BackendFrameworks = map[string]struct{}{
		"fastapi": {}, "django": {}, "flask": {}, "express": {},
		"nestjs": {}, "spring": {}, "rails": {}, "laravel": {}, "gin": {},
	}

	MLFrameworks = map[string]struct{}{
		"pytorch": {}, "tensorflow": {}, "langchain": {},
	}

	DevOpsTools = map[string]struct{}{
		"docker": {}, "kubernetes": {}, "terraform": {}, "ansible": {},
	}

	NotebookLanguages = map[string]struct{}{
		"Jupyter Notebook": {}, "R": {}, "Julia": {},
	}

	SystemsLanguages = map[string]struct{}{
		"Python": {}, "Java": {}, "Go": {}, "Rust": {}, "C++": {},
	}

	ScriptLanguages = map[string]struct{}{
		"TypeScript": {}, "JavaScript": {},
	}
)
