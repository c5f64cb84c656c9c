package vocab

import "github.com/jonathan/resume-parser/internal/types"

// Default returns a fresh copy of the built-in English + Spanish vocabulary
func Default() *Vocabulary {
	return defaultVocabulary.Clone()
}

var defaultVocabulary = &Vocabulary{
	Sections: SectionDictionary{
		{Key: types.SectionExperience, Keywords: []string{
			"experiencia", "experience", "experiencia laboral", "experiencia profesional",
			"work experience", "professional experience", "employment", "work history",
			"trayectoria", "historial laboral",
		}},
		{Key: types.SectionEducation, Keywords: []string{
			"educación", "education", "formación", "academic", "estudios",
			"university", "college", "degree",
		}},
		{Key: types.SectionSkills, Keywords: []string{
			"habilidades", "skills", "competencias", "aptitudes", "conocimientos",
			"tecnologías", "technologies", "tech stack",
		}},
		{Key: types.SectionLanguages, Keywords: []string{
			"idiomas", "languages", "lenguas",
		}},
		{Key: types.SectionProjects, Keywords: []string{
			"proyectos", "projects", "portfolio", "portafolio",
		}},
		{Key: types.SectionCertifications, Keywords: []string{
			"certificaciones", "certifications", "certificados", "certificates",
			"cursos", "courses", "licenses",
		}},
		{Key: types.SectionSummary, Keywords: []string{
			"resumen", "summary", "perfil", "profile", "sobre mí", "about me",
			"objetivo", "objective",
		}},
	},
	Months: []Month{
		{Number: 1, Names: []string{"january", "jan", "enero", "ene"}},
		{Number: 2, Names: []string{"february", "feb", "febrero"}},
		{Number: 3, Names: []string{"march", "mar", "marzo"}},
		{Number: 4, Names: []string{"april", "apr", "abril", "abr"}},
		{Number: 5, Names: []string{"may", "mayo"}},
		{Number: 6, Names: []string{"june", "jun", "junio"}},
		{Number: 7, Names: []string{"july", "jul", "julio"}},
		{Number: 8, Names: []string{"august", "aug", "agosto", "ago"}},
		{Number: 9, Names: []string{"september", "sept", "sep", "septiembre", "setiembre", "set"}},
		{Number: 10, Names: []string{"october", "oct", "octubre"}},
		{Number: 11, Names: []string{"november", "nov", "noviembre"}},
		{Number: 12, Names: []string{"december", "dec", "diciembre", "dic"}},
	},
	RangeMarkers: []string{"present", "presente", "actual", "actualidad", "actualmente", "current", "ahora"},
	OpenMarkers:  []string{"present", "actual", "current", "ahora", "curso", "ongoing"},
	Skills: []string{
		"JavaScript", "TypeScript", "React", "Angular", "Vue", "Node.js", "Express",
		"Python", "Django", "Flask", "Java", "Spring", "C++", "C#", ".NET", "Golang",
		"Rust", "PHP", "Laravel", "Ruby", "Rails", "Swift", "Kotlin", "SQL",
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "GraphQL", "HTML", "CSS",
		"Docker", "Kubernetes", "Terraform", "AWS", "Azure", "GCP", "Linux", "Git",
		"Jenkins", "Figma", "Scrum", "Agile", "Excel", "Power BI", "Tableau",
		"Machine Learning",
	},
	Placeholders: Placeholders{
		Organization: "Organization not detected",
		Title:        "Title not detected",
		Institution:  "Institution not detected",
		Credential:   "Credential not detected",
		DateRange:    "Date not detected",
	},
}
