// Package taxonomy maps free-text skill mentions onto a small canonical
// vocabulary using exact, alias, fuzzy, and semantic matching strategies.
package taxonomy

import (
	"sort"

	"github.com/adrg/strutil/metrics"
	lru "github.com/hashicorp/golang-lru/v2"
)

// OtherCategory is the category assigned to skills outside the curated taxonomy.
const OtherCategory = "other"

// normalizeCacheSize bounds the Normalize memoization cache. Identical skill
// strings recur heavily across a batch of candidates; eviction is LRU.
const normalizeCacheSize = 1024

// aliasEntry maps one canonical skill to its known textual variants.
// Declaration order matters: when two canonical skills claim the same alias
// (e.g. "tf" for terraform and tensorflow), the later entry wins the reverse
// lookup, matching the curation order below.
type aliasEntry struct {
	canonical string
	aliases   []string
}

var skillAliases = []aliasEntry{
	// Programming languages
	{"python", []string{"python", "py", "python3", "cpython", "python2"}},
	{"javascript", []string{"javascript", "js", "ecmascript", "node.js", "nodejs", "node"}},
	{"typescript", []string{"typescript", "ts"}},
	{"java", []string{"java", "openjdk", "oracle java"}},
	{"c#", []string{"c#", "csharp", "c sharp", ".net", "dotnet"}},
	{"c++", []string{"c++", "cpp", "cplusplus", "c plus plus"}},
	{"go", []string{"go", "golang", "go lang"}},
	{"rust", []string{"rust", "rust-lang"}},
	{"php", []string{"php", "php7", "php8"}},
	{"ruby", []string{"ruby", "ruby on rails", "rails"}},
	{"swift", []string{"swift", "ios swift"}},
	{"kotlin", []string{"kotlin", "android kotlin"}},
	{"scala", []string{"scala", "scala.js"}},
	{"r", []string{"r", "r programming", "r-lang"}},

	// Databases
	{"postgresql", []string{"postgresql", "postgres", "psql", "pg"}},
	{"mysql", []string{"mysql", "mariadb"}},
	{"mongodb", []string{"mongodb", "mongo", "mongo db"}},
	{"redis", []string{"redis", "redis cache"}},
	{"sqlite", []string{"sqlite", "sqlite3"}},
	{"oracle", []string{"oracle", "oracle db", "oracle database"}},
	{"cassandra", []string{"cassandra", "apache cassandra"}},
	{"elasticsearch", []string{"elasticsearch", "elastic search", "es"}},

	// Cloud platforms
	{"aws", []string{"aws", "amazon web services", "amazon aws"}},
	{"azure", []string{"azure", "microsoft azure", "ms azure"}},
	{"gcp", []string{"gcp", "google cloud", "google cloud platform"}},

	// DevOps and infrastructure
	{"docker", []string{"docker", "containerization", "containers"}},
	{"kubernetes", []string{"kubernetes", "k8s", "kube"}},
	{"terraform", []string{"terraform", "tf", "hcl"}},
	{"ansible", []string{"ansible", "ansible playbook"}},
	{"jenkins", []string{"jenkins", "jenkins ci/cd", "jenkins pipeline"}},
	{"git", []string{"git", "version control", "git scm"}},
	{"github", []string{"github", "github actions"}},
	{"gitlab", []string{"gitlab", "gitlab ci"}},
	{"circleci", []string{"circleci", "circle ci"}},

	// Data and analytics
	{"apache spark", []string{"spark", "apache spark", "pyspark"}},
	{"hadoop", []string{"hadoop", "apache hadoop", "hdfs"}},
	{"kafka", []string{"kafka", "apache kafka"}},
	{"airflow", []string{"airflow", "apache airflow"}},
	{"tableau", []string{"tableau", "tableau desktop", "tableau server"}},
	{"power bi", []string{"power bi", "powerbi", "microsoft power bi"}},
	{"excel", []string{"excel", "microsoft excel", "ms excel"}},

	// Web frameworks
	{"react", []string{"react", "reactjs", "react.js"}},
	{"angular", []string{"angular", "angularjs", "angular.js"}},
	{"vue", []string{"vue", "vuejs", "vue.js"}},
	{"django", []string{"django", "django rest", "drf"}},
	{"flask", []string{"flask", "flask api"}},
	{"fastapi", []string{"fastapi", "fast api"}},
	{"express", []string{"express", "expressjs", "express.js"}},
	{"spring", []string{"spring", "spring boot", "spring framework"}},

	// Operating systems
	{"linux", []string{"linux", "ubuntu", "centos", "rhel", "debian"}},
	{"windows", []string{"windows", "windows server", "microsoft windows"}},
	{"macos", []string{"macos", "mac os", "osx", "os x"}},

	// Testing
	{"pytest", []string{"pytest", "python testing"}},
	{"junit", []string{"junit", "java testing"}},
	{"selenium", []string{"selenium", "selenium webdriver"}},
	{"cypress", []string{"cypress", "cypress.io"}},

	// Machine learning
	{"tensorflow", []string{"tensorflow", "tf", "keras"}},
	{"pytorch", []string{"pytorch", "torch"}},
	{"scikit-learn", []string{"scikit-learn", "sklearn", "scikit learn"}},
	{"pandas", []string{"pandas", "python pandas"}},
	{"numpy", []string{"numpy", "python numpy"}},
}

// categoryEntry groups canonical skills for relatedness credit and semantic
// category bonuses. Every canonical skill belongs to exactly one category.
type categoryEntry struct {
	name   string
	skills []string
}

var skillCategories = []categoryEntry{
	{"programming", []string{"python", "javascript", "typescript", "java", "c#", "c++", "go", "rust", "php", "ruby", "swift", "kotlin", "scala", "r"}},
	{"databases", []string{"postgresql", "mysql", "mongodb", "redis", "sqlite", "oracle", "cassandra", "elasticsearch"}},
	{"cloud", []string{"aws", "azure", "gcp"}},
	{"devops", []string{"docker", "kubernetes", "terraform", "ansible", "jenkins", "git", "github", "gitlab", "circleci"}},
	{"data_analytics", []string{"apache spark", "hadoop", "kafka", "airflow", "tableau", "power bi", "excel"}},
	{"web_frameworks", []string{"react", "angular", "vue", "django", "flask", "fastapi", "express", "spring"}},
	{"operating_systems", []string{"linux", "windows", "macos"}},
	{"testing", []string{"pytest", "junit", "selenium", "cypress"}},
	{"machine_learning", []string{"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy"}},
}

// Taxonomy is the canonical skill dictionary. It is immutable after New and
// safe for concurrent use; the only mutable state is the bounded Normalize
// memoization cache, which is internally synchronized.
type Taxonomy struct {
	canonical    []string // sorted, for deterministic iteration
	canonicalSet map[string]struct{}
	aliasToSkill map[string]string
	categoryOf   map[string]string
	membersOf    map[string][]string

	normCache *lru.Cache[string, string]
	seq       *metrics.RatcliffObershelp
}

// New builds the taxonomy from the curated alias and category tables.
func New() *Taxonomy {
	t := &Taxonomy{
		canonicalSet: make(map[string]struct{}, len(skillAliases)),
		aliasToSkill: make(map[string]string),
		categoryOf:   make(map[string]string),
		membersOf:    make(map[string][]string, len(skillCategories)),
		seq:          metrics.NewRatcliffObershelp(),
	}

	for _, entry := range skillAliases {
		t.canonicalSet[entry.canonical] = struct{}{}
		for _, alias := range entry.aliases {
			t.aliasToSkill[alias] = entry.canonical
		}
	}

	t.canonical = make([]string, 0, len(t.canonicalSet))
	for name := range t.canonicalSet {
		t.canonical = append(t.canonical, name)
	}
	sort.Strings(t.canonical)

	for _, cat := range skillCategories {
		members := make([]string, len(cat.skills))
		copy(members, cat.skills)
		sort.Strings(members)
		t.membersOf[cat.name] = members
		for _, skill := range cat.skills {
			t.categoryOf[skill] = cat.name
		}
	}

	cache, err := lru.New[string, string](normalizeCacheSize)
	if err != nil {
		// Unreachable: lru.New only fails for non-positive sizes.
		panic(err)
	}
	t.normCache = cache

	return t
}

// Canonical reports whether name is a canonical skill.
func (t *Taxonomy) Canonical(name string) bool {
	_, ok := t.canonicalSet[name]
	return ok
}

// Category returns the category of a skill after normalization, or
// OtherCategory when the skill is outside the curated taxonomy.
func (t *Taxonomy) Category(skill string) string {
	normalized := t.Normalize(skill)
	if category, ok := t.categoryOf[normalized]; ok {
		return category
	}
	return OtherCategory
}

// RelatedSkills returns the canonical skills sharing a category with the
// input, excluding the input itself. Uncategorized skills have no relatives.
func (t *Taxonomy) RelatedSkills(skill string) []string {
	normalized := t.Normalize(skill)
	category, ok := t.categoryOf[normalized]
	if !ok {
		return nil
	}

	members := t.membersOf[category]
	related := make([]string, 0, len(members)-1)
	for _, member := range members {
		if member != normalized {
			related = append(related, member)
		}
	}
	return related
}
