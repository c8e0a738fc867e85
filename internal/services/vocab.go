package services

// Fixed vocabularies used by the heuristic extractors. These are tuned to
// the institute resume/JD template, not a general document model.

var TechKeywords = []string{
	"c", "c++", "java", "python", "go", "ruby", "rust", "kotlin", "typescript", "javascript", "php", "scala", "perl", "swift",
	"html", "css", "react", "angular", "vue", "next.js", "node.js", "express.js", "django", "flask", "spring boot",
	"flutter", "react native", "android", "ios", "swiftui",
	"mysql", "postgresql", "mongodb", "sqlite", "oracle", "cassandra", "redis", "firebase", "sql", "nosql",
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins", "terraform", "ansible", "linux", "nginx", "apache",
	"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn", "keras", "xgboost", "huggingface", "opencv", "llm", "langchain",
	"pandas", "numpy", "matplotlib", "seaborn", "big data", "hadoop", "spark", "hive", "airflow", "power bi", "tableau",
	"selenium", "junit", "pytest", "postman", "cypress",
	"git", "github", "bitbucket", "jira", "agile", "scrum", "ci/cd", "rest api", "graphql", "json", "yaml", "xml",
}

var NonTechKeywords = []string{
	"strategy", "management consulting", "business consulting", "financial modeling", "valuation", "investment banking",
	"private equity", "venture capital", "equity research", "derivatives", "hedging", "mergers and acquisitions", "m&a",
	"capital markets", "asset management", "wealth management", "risk management", "audit", "due diligence", "compliance",
	"product management", "business development", "sales strategy", "marketing", "growth", "user research", "go-to-market",
	"product analytics", "roadmap", "market research", "competitive analysis", "customer success", "crm", "kpis", "roi", "unit economics",
	"excel", "powerpoint", "google sheets", "tableau", "power bi", "salesforce", "hubspot", "lookerstudio", "figma", "miro",
	"communication", "problem solving", "stakeholder management", "leadership", "collaboration", "presentation skills", "design thinking",
}

var BranchKeywords = []string{
	"computer science", "information technology", "data science", "artificial intelligence",
	"machine learning", "cybersecurity", "software engineering", "electronics and communication",
	"electronics engineering", "electrical engineering", "electrical and electronics", "instrumentation engineering",
	"robotics", "control systems", "engineering physics", "applied physics", "applied mathematics",
	"mathematics and computing", "mathematical sciences", "quantum computing", "bioinformatics",
	"computational biology", "mechanical engineering", "civil engineering", "chemical engineering",
	"metallurgical engineering", "aerospace engineering", "aeronautical engineering", "marine engineering",
	"mining engineering", "automobile engineering", "industrial engineering", "production engineering",
	"petroleum engineering", "textile engineering", "ceramic engineering", "nuclear engineering",
	"agricultural engineering", "biotechnology", "biochemical engineering", "ocean engineering",
	"materials science", "engineering design", "engineering management", "business analytics",
	"operations research", "economics", "cognitive science", "design", "humanities",
	"environmental engineering", "energy science", "rural technology", "management", "mba", "bba", "statistics", "geoinformatics",
}

// DomainRule maps a domain name to its trigger keywords. Rules are checked
// in order; the first substring hit wins.
type DomainRule struct {
	Name     string
	Keywords []string
}

var DomainRules = []DomainRule{
	{"Finance", []string{"finance", "bank", "investment", "trading", "capital market", "equity", "hedge fund", "fintech"}},
	{"Healthcare", []string{"health", "hospital", "clinical", "biotech", "medtech", "pharmaceutical", "medical"}},
	{"Technology", []string{"software", "developer", "tech", "cloud", "ai", "ml", "it services", "cybersecurity"}},
	{"Consulting", []string{"consulting", "advisory", "client delivery", "strategy consulting", "business analysis"}},
	{"Product", []string{"product manager", "product management", "roadmap", "feature", "user research"}},
	{"Education", []string{"edtech", "teaching", "curriculum", "learning", "academic", "school", "university"}},
	{"Legal", []string{"law", "legal", "compliance", "regulatory"}},
	{"Retail", []string{"ecommerce", "retail", "consumer", "supply chain", "inventory", "logistics"}},
	{"Energy", []string{"renewable", "solar", "wind", "energy", "oil", "gas", "power", "climate"}},
	{"Government", []string{"public sector", "policy", "governance", "ministry", "bureaucracy", "civil services"}},
	{"Telecom", []string{"telecom", "network", "5g", "broadband"}},
	{"Design", []string{"ui", "ux", "figma", "adobe", "interface", "design thinking"}},
	{"Media", []string{"media", "advertising", "content", "branding", "digital marketing", "journalism"}},
	{"Manufacturing", []string{"factory", "industrial", "mechanical", "automation", "production", "assembly line"}},
}

// BranchEquivalents maps canonical branch tokens to their accepted synonyms.
// Canonical tokens are themselves members of their synonym list, which makes
// canonicalization idempotent.
var BranchEquivalents = map[string][]string{
	"cs":       {"computer science", "cse", "computer science and engineering", "cs", "it", "information technology"},
	"dsai":     {"artificial intelligence", "ai", "dsai", "artificial intelligence and data science", "data science and artificial intelligence", "data science"},
	"ece":      {"electronics", "electronics and communication engineering", "ece"},
	"ee":       {"electrical", "ee", "electrical engineering"},
	"me":       {"mechanical", "me", "mech", "mechanical engineering"},
	"civil":    {"civil", "civil engineering"},
	"math":     {"mathematics", "math", "mathematics and computing"},
	"chemical": {"chemical engineering", "chemical", "che", "chem"},
	"ep":       {"engineering physics", "ep"},
	"bsbe":     {"biosciences and bioengineering", "bsbe", "bioengineering", "biotechnology"},
}
