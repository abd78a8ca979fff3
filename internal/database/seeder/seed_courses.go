package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

// CoursesSeeder loads the course catalog and its competency links. Links are
// resolved by competency name, so CompetenciesSeeder must run first.
type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

type courseRow struct {
	Title         string
	Description   string
	DurationHours int
	Category      string
	PriorityHint  float64
	Competencies  []string
}

func courseCatalog() []courseRow {
	return []courseRow{
		{"Time Management and Productivity", "Techniques to improve time management and personal productivity", 8, "productivity", 0.5,
			[]string{"Time Management", "Basic Communication"}},
		{"Effective Communication", "Developing verbal and written communication skills", 16, "communication", 0.5,
			[]string{"Basic Communication"}},
		{"Situational Leadership", "Leadership techniques adaptable to different contexts", 24, "leadership", 1.0,
			[]string{"Team Leadership", "Decision Making"}},
		{"Data-Driven Decision Making", "Methods for making informed decisions", 12, "analytics", 0.5,
			[]string{"Decision Making"}},
		{"Agile Project Management", "Agile methodologies for project management", 32, "project_management", 1.0,
			[]string{"Project Management"}},
		{"Strategic Vision and Planning", "Developing strategic thinking", 20, "strategy", 1.5,
			[]string{"Strategic Vision", "Innovation and Strategy"}},
		{"Conflict Management and Negotiation", "Mediation and negotiation techniques", 16, "leadership", 0.5,
			[]string{"Conflict Resolution"}},
		{"Business Data Analysis", "Tools and techniques for data analysis", 40, "analytics", 1.0,
			[]string{"Data Analysis"}},
		{"Executive Leadership", "Competencies for executive-level leadership", 48, "leadership", 2.0,
			[]string{"Executive Leadership", "Organizational Transformation"}},
		{"Digital Transformation and Innovation", "Leading digital transformation initiatives", 36, "innovation", 1.5,
			[]string{"Stakeholder Management", "Innovation and Strategy"}},
	}
}

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses",
		"id", "title", "description", "duration_hours", "category", "priority_hint", "is_active"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "course_competencies", "course_id", "competency_id"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range courseCatalog() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO courses (id, title, description, duration_hours, category, priority_hint, is_active)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, TRUE)
			 ON CONFLICT (title) DO NOTHING`,
			it.Title, it.Description, it.DurationHours, it.Category, it.PriorityHint,
		)
		if err != nil {
			return err
		}

		for _, compName := range it.Competencies {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO course_competencies (course_id, competency_id)
				 SELECT c.id, k.id FROM courses c, competencies k
				 WHERE c.title = $1 AND k.name = $2
				 ON CONFLICT DO NOTHING`,
				it.Title, compName,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
