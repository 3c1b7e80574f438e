package seeder

type catalogSkill struct {
	Name       string
	Category   string
	Importance float64
}

type catalogCareer struct {
	Title       string
	Industry    string
	Description string
	SalaryMin   int
	SalaryMax   int
	GrowthRate  float64
	Education   string
	Experience  string
	Remote      bool
	Demand      float64
}

type catalogRequirement struct {
	Career      string
	Skill       string
	Importance  int
	Proficiency int
}

var catalogSkills = []catalogSkill{
	{"Python", "Technical", 0.9},
	{"JavaScript", "Technical", 0.85},
	{"React", "Technical", 0.8},
	{"Machine Learning", "Technical", 0.9},
	{"Data Analysis", "Technical", 0.85},
	{"SQL", "Technical", 0.8},
	{"Communication", "Soft", 0.9},
	{"Leadership", "Soft", 0.85},
	{"Problem Solving", "Soft", 0.9},
	{"Project Management", "Domain", 0.8},
	{"Java", "Technical", 0.8},
	{"C++", "Technical", 0.75},
	{"HTML/CSS", "Technical", 0.7},
	{"AWS", "Technical", 0.85},
	{"Docker", "Technical", 0.8},
	{"Git", "Technical", 0.8},
	{"Agile", "Domain", 0.75},
	{"UI/UX Design", "Technical", 0.8},
	{"Database Design", "Technical", 0.8},
	{"Statistics", "Technical", 0.8},
}

var catalogCareers = []catalogCareer{
	{"Data Scientist", "Technology", "Analyze complex data to help organizations make informed decisions", 80000, 150000, 0.22, "Bachelor", "2-4 years", true, 0.9},
	{"Software Engineer", "Technology", "Design, develop, and maintain software applications", 70000, 140000, 0.15, "Bachelor", "1-3 years", true, 0.85},
	{"Product Manager", "Business", "Lead product development and strategy", 90000, 160000, 0.12, "Bachelor", "3-5 years", true, 0.8},
	{"UX Designer", "Design", "Create user-centered design solutions", 60000, 120000, 0.18, "Bachelor", "2-4 years", true, 0.75},
	{"DevOps Engineer", "Technology", "Manage deployment and infrastructure automation", 75000, 130000, 0.20, "Bachelor", "3-5 years", true, 0.85},
	{"Data Analyst", "Technology", "Collect, process and analyze data to provide insights", 55000, 100000, 0.14, "Bachelor", "1-3 years", true, 0.8},
	{"Machine Learning Engineer", "Technology", "Build and deploy ML models and systems", 90000, 160000, 0.25, "Bachelor", "3-5 years", true, 0.9},
	{"Frontend Developer", "Technology", "Build user interfaces for web applications", 60000, 110000, 0.12, "Bachelor", "1-3 years", true, 0.8},
	{"Backend Developer", "Technology", "Build server-side applications and APIs", 70000, 130000, 0.15, "Bachelor", "2-4 years", true, 0.8},
	{"Full Stack Developer", "Technology", "Work on both frontend and backend development", 65000, 125000, 0.13, "Bachelor", "2-4 years", true, 0.82},
}

var catalogRequirements = []catalogRequirement{
	{"Data Scientist", "Python", 5, 4},
	{"Data Scientist", "Data Analysis", 5, 4},
	{"Data Scientist", "Machine Learning", 5, 4},
	{"Data Scientist", "SQL", 4, 3},
	{"Data Scientist", "Statistics", 4, 3},

	{"Software Engineer", "Python", 4, 3},
	{"Software Engineer", "JavaScript", 4, 3},
	{"Software Engineer", "Java", 4, 3},
	{"Software Engineer", "Git", 3, 2},
	{"Software Engineer", "Problem Solving", 4, 3},

	{"Product Manager", "Communication", 5, 4},
	{"Product Manager", "Leadership", 5, 4},
	{"Product Manager", "Project Management", 4, 3},
	{"Product Manager", "Agile", 3, 2},

	{"UX Designer", "UI/UX Design", 5, 4},
	{"UX Designer", "HTML/CSS", 3, 2},
	{"UX Designer", "Communication", 4, 3},
	{"UX Designer", "Problem Solving", 4, 3},

	{"DevOps Engineer", "AWS", 5, 4},
	{"DevOps Engineer", "Docker", 4, 3},
	{"DevOps Engineer", "Git", 4, 3},
	{"DevOps Engineer", "Python", 3, 2},
}
