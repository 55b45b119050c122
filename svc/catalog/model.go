package catalog

// Difficulty is the skill level a course targets.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// IsValid reports whether d is one of the known difficulty levels.
func (d Difficulty) IsValid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

func (d Difficulty) String() string { return string(d) }

// Category groups courses by technology area.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Course is an external learning resource listed in the catalog.
// Category is filled from CategoryID when the catalog is built.
type Course struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"shortDescription"`
	Description      string     `json:"description"`
	Difficulty       Difficulty `json:"difficulty"`
	Language         string     `json:"language"`
	Platform         string     `json:"platform"`
	IsFree           bool       `json:"isFree"`
	ExternalURL      string     `json:"externalUrl"`
	RecommendedFor   string     `json:"recommendedFor"`
	CategoryID       string     `json:"categoryId"`
	Category         Category   `json:"category"`
}

// RoadmapItem is a single ordered step of a roadmap pointing at a course.
type RoadmapItem struct {
	ID          string `json:"id"`
	Order       int    `json:"order"`
	Explanation string `json:"explanation"`
	CourseID    string `json:"courseId"`
	Course      Course `json:"course"`
}

// Roadmap is a curated sequence of courses.
type Roadmap struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Items       []RoadmapItem `json:"items"`
}

// Data is the raw catalog content as provided by a Source.
type Data struct {
	Categories []Category
	Courses    []Course
	Roadmaps   []Roadmap
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	out := Data{
		Categories: append([]Category(nil), d.Categories...),
		Courses:    append([]Course(nil), d.Courses...),
		Roadmaps:   make([]Roadmap, 0, len(d.Roadmaps)),
	}
	for _, r := range d.Roadmaps {
		out.Roadmaps = append(out.Roadmaps, r.clone())
	}
	return out
}

func (r Roadmap) clone() Roadmap {
	r.Items = append([]RoadmapItem(nil), r.Items...)
	return r
}
