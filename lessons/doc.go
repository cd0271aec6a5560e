// Package lessons holds the teaching content: ordered batteries of
// literal SQL grouped by topic (intro, joins, aggregation, subqueries).
//
// Lessons contain no branching logic. Each example's SQL is passed to the
// engine as written, and its result is printed; the first failing example
// aborts the rest of the lesson.
package lessons
