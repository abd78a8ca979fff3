package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

// CompetenciesSeeder loads the reference competency catalog: four
// competencies per career level, weights growing with seniority.
type CompetenciesSeeder struct{}

func (CompetenciesSeeder) Name() string { return "competencies" }

type competencyRow struct {
	Name          string
	Description   string
	Category      string
	Level         string
	Weight        float64
	RequiredScore int
}

func competencyCatalog() []competencyRow {
	return []competencyRow{
		{"Time Management", "Ability to organize and prioritize tasks", "behavioral", "FC-03", 1.0, 3},
		{"Basic Communication", "Ability to communicate clearly and objectively", "behavioral", "FC-03", 1.0, 3},
		{"Teamwork", "Effective collaboration with colleagues", "behavioral", "FC-03", 1.0, 3},
		{"Operational Technical Knowledge", "Command of basic operational procedures", "technical", "FC-03", 1.0, 3},

		{"Team Leadership", "Ability to lead and motivate small groups", "behavioral", "FC-04", 1.2, 3},
		{"Decision Making", "Ability to decide with limited information", "strategic", "FC-04", 1.1, 3},
		{"Project Management", "Coordination of small and medium-sized projects", "technical", "FC-04", 1.0, 3},
		{"Conflict Resolution", "Mediation of interpersonal conflicts", "behavioral", "FC-04", 1.0, 3},

		{"Strategic Vision", "Ability to think strategically about the business", "strategic", "FC-05", 1.5, 4},
		{"People Management", "Development and management of multidisciplinary teams", "behavioral", "FC-05", 1.3, 4},
		{"Data Analysis", "Interpreting data to support decisions", "technical", "FC-05", 1.2, 4},
		{"Budget and Resources", "Management of financial and material resources", "technical", "FC-05", 1.1, 4},

		{"Executive Leadership", "Ability to lead at the executive level", "strategic", "FC-06", 1.8, 5},
		{"Organizational Transformation", "Leading organizational change", "strategic", "FC-06", 1.6, 4},
		{"Stakeholder Management", "Managing relationships with key stakeholders", "behavioral", "FC-06", 1.4, 4},
		{"Innovation and Strategy", "Developing innovative strategies", "strategic", "FC-06", 1.7, 5},
	}
}

func (CompetenciesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "competencies",
		"id", "name", "description", "category", "level", "weight", "required_score"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range competencyCatalog() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO competencies (id, name, description, category, level, weight, required_score)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
			 ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Description, it.Category, it.Level, it.Weight, it.RequiredScore,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
