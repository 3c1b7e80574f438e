package seeder

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
		CareersSeeder{},
		CareerSkillsSeeder{},
	}
}
