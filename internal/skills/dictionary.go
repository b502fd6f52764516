package skills

// Canonical skill vocabulary. All terms are lowercase; callers lowercase
// input before matching. Declaration order matters: description scans and
// role rankings resolve ties by first occurrence.

var Technical = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"go", "rust", "scala", "r", "matlab", "sql", "html", "css",

	// Web frameworks
	"react", "angular", "vue", "nextjs", "next.js", "svelte", "django", "flask", "fastapi",
	"express", "nodejs", "node.js", "spring", "asp.net", ".net", "rails", "laravel",

	// Mobile
	"android", "ios", "react native", "flutter", "xamarin", "ionic",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "cassandra",
	"dynamodb", "elasticsearch", "mssql", "mariadb", "firebase",

	// Cloud and DevOps
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins", "gitlab",
	"github actions", "terraform", "ansible", "ci/cd", "nginx", "apache",

	// Data science and ML
	"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn", "keras",
	"pandas", "numpy", "data analysis", "data science", "nlp", "computer vision",
	"tableau", "power bi", "spark", "hadoop", "airflow",

	// Other
	"git", "rest api", "graphql", "microservices", "agile", "scrum", "jira",
	"linux", "bash", "powershell", "api", "json", "xml", "oauth", "jwt",
	"testing", "unit testing", "selenium", "jest", "pytest", "kafka", "rabbitmq",
}

var Soft = []string{
	"leadership", "communication", "teamwork", "problem solving", "critical thinking",
	"time management", "project management", "collaboration", "adaptability", "creativity",
	"interpersonal", "presentation", "analytical", "decision making", "conflict resolution",
	"mentoring", "negotiation", "strategic thinking", "attention to detail", "multitasking",
	"initiative", "self-motivated", "organizational", "customer service", "public speaking",
}

// RoleRequirement lists the skills expected for one target role. The slice
// order below is the tie-break order wherever roles are ranked: the first
// role reaching the best overlap wins.
type RoleRequirement struct {
	Name   string
	Skills []string
}

var RoleRequirements = []RoleRequirement{
	{"software_engineer", []string{
		"python", "java", "javascript", "git", "sql", "rest api", "data structures",
		"algorithms", "testing", "problem solving", "teamwork",
	}},
	{"frontend_developer", []string{
		"html", "css", "javascript", "react", "typescript", "responsive design",
		"git", "rest api", "ui/ux", "problem solving",
	}},
	{"backend_developer", []string{
		"python", "java", "sql", "rest api", "microservices", "docker",
		"database design", "git", "problem solving", "system design",
	}},
	{"data_scientist", []string{
		"python", "r", "sql", "machine learning", "statistics", "pandas", "numpy",
		"data visualization", "problem solving", "communication", "analytical",
	}},
	{"devops_engineer", []string{
		"linux", "docker", "kubernetes", "aws", "ci/cd", "terraform", "bash",
		"python", "git", "monitoring", "problem solving",
	}},
	{"full_stack_developer", []string{
		"javascript", "python", "react", "nodejs", "sql", "git", "rest api",
		"html", "css", "problem solving", "teamwork",
	}},
}

// SynonymGroup maps a canonical skill name to the aliases job boards and
// resumes use for it.
type SynonymGroup struct {
	Canonical string
	Aliases   []string
}

var SynonymGroups = []SynonymGroup{
	{"javascript", []string{"js", "ecmascript"}},
	{"typescript", []string{"ts"}},
	{"nodejs", []string{"node.js", "node"}},
	{"reactjs", []string{"react", "react.js"}},
	{"vuejs", []string{"vue", "vue.js"}},
	{"python", []string{"py"}},
	{"docker", []string{"containerization"}},
	{"kubernetes", []string{"k8s"}},
	{"amazon web services", []string{"aws"}},
	{"google cloud platform", []string{"gcp", "google cloud"}},
	{"microsoft azure", []string{"azure"}},
	{"sql", []string{"mysql", "postgresql", "sql server"}},
	{"nosql", []string{"mongodb", "cassandra", "dynamodb"}},
}

// RelatedGroup links a skill to adjacent skills that earn partial credit
// when matching a posting.
type RelatedGroup struct {
	Skill   string
	Related []string
}

var RelatedGroups = []RelatedGroup{
	{"react", []string{"javascript", "typescript", "html", "css"}},
	{"angular", []string{"javascript", "typescript", "html", "css"}},
	{"vue", []string{"javascript", "typescript", "html", "css"}},
	{"django", []string{"python"}},
	{"flask", []string{"python"}},
	{"spring", []string{"java"}},
	{"express", []string{"nodejs", "javascript"}},
	{"docker", []string{"linux", "devops"}},
	{"kubernetes", []string{"docker", "linux", "devops"}},
	{"aws", []string{"cloud", "devops"}},
	{"azure", []string{"cloud", "devops"}},
	{"gcp", []string{"cloud", "devops"}},
}

// GenericGaps is the fallback gap list when no target role overlaps the
// candidate's skills at all.
var GenericGaps = []string{"git", "sql", "rest api", "testing", "docker", "ci/cd", "agile"}
