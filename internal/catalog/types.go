package catalog

// Question is a single drill prompt plus the keywords used to score answers.
type Question struct {
	ID     string   `yaml:"id" json:"id"`
	Title  string   `yaml:"title" json:"title"`
	Prompt string   `yaml:"prompt" json:"prompt"`
	Tags   []string `yaml:"tags" json:"tags"`
	Keys   []string `yaml:"keys" json:"keys"`
}

// Track is a themed collection of questions with shared narration.
type Track struct {
	ID        string     `yaml:"-" json:"-"`
	Label     string     `yaml:"label" json:"label"`
	Brief     string     `yaml:"brief" json:"brief"`
	Intro     string     `yaml:"intro" json:"intro"`
	Questions []Question `yaml:"questions" json:"questions"`
}

// Contains reports whether q belongs to the track.
func (t Track) Contains(q Question) bool {
	for _, tq := range t.Questions {
		if tq.ID == q.ID {
			return true
		}
	}
	return false
}
