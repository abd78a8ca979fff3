package seeder

func Defaults() []Seeder {
	return []Seeder{
		CompetenciesSeeder{},
		CoursesSeeder{},
		AccountsSeeder{},
	}
}
