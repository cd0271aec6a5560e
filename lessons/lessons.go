package lessons

import (
	"fmt"
	"io"
	"strings"

	"github.com/duckdrill/duckdrill/db"
)

// Example is one teaching query: a title, the literal SQL, and an optional
// row-limit override for printing (zero means the default).
type Example struct {
	Title string
	Query string
	Limit int
}

// Lesson is an ordered battery of examples grouped by teaching topic.
// There is no branching logic; examples run start to finish, and the
// first failure aborts the remainder.
type Lesson struct {
	Name     string
	Title    string
	Examples []Example
}

// All returns every lesson in teaching order.
func All() []Lesson {
	return []Lesson{Intro, Joins, Aggregation, Subqueries}
}

// Find returns the lesson with the given name.
func Find(name string) (Lesson, bool) {
	for _, lesson := range All() {
		if lesson.Name == name {
			return lesson, true
		}
	}
	return Lesson{}, false
}

// Run executes the lesson's examples in order against the engine and
// prints each result to w.
func (l Lesson) Run(engine *db.Engine, w io.Writer) error {
	fmt.Fprintf(w, "%s\n%s\n", l.Title, strings.Repeat("=", len(l.Title)))

	for _, example := range l.Examples {
		result, err := engine.Query(example.Query)
		if err != nil {
			return fmt.Errorf("%s: %w", example.Title, err)
		}
		result.Print(w, example.Title, example.Limit)
	}

	return nil
}
