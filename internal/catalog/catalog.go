// Package catalog holds the built-in demo catalog used by the in-memory
// repositories and by the postgres seeders.
package catalog

import (
	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/posting"
)

// Graduate pairs a candidate with the plain record number used to log in.
type Graduate struct {
	candidate.Candidate
	RecordNumber string
}

const (
	RoleDevelopment = "Development Team"
	RoleQA          = "QA Tester"
	RoleDesign      = "UX/UI Designer"
)

func Graduates() []Graduate {
	return []Graduate{
		graduate(1, "123", "456", "Ana Pérez", "Software",
			"Desarrolla sistemas web completos con experiencia en frontend y backend",
			RoleDevelopment, "Fullstack",
			"HTML", "CSS", "JavaScript", "React", "Node.js", "PostgreSQL"),
		graduate(2, "124", "457", "Luis Gómez", "Software",
			"Especialista en desarrollo full stack con Java y Angular",
			RoleDevelopment, "Fullstack",
			"Java", "Spring", "Angular", "MySQL", "JavaScript", "CSS"),
		graduate(3, "125", "458", "María Torres", "Software",
			"Desarrolladora frontend especializada en React y experiencia de usuario",
			RoleDevelopment, "Frontend",
			"React", "JavaScript", "HTML", "CSS", "Angular"),
		graduate(4, "126", "459", "Carlos Ruiz", "Software",
			"Desarrollador frontend con experiencia en Angular y Vue.js",
			RoleDevelopment, "Frontend",
			"Angular", "JavaScript", "HTML", "CSS", "React"),
		graduate(5, "127", "460", "Elena Vargas", "Software",
			"Desarrolladora backend especializada en Python y microservicios",
			RoleDevelopment, "Backend",
			"Python", "Django", "PostgreSQL", "Node.js", "MongoDB"),
		graduate(6, "128", "461", "Diego Castro", "Software",
			"Desarrollador backend con experiencia en Java Spring y bases de datos",
			RoleDevelopment, "Backend",
			"Java", "Spring", "MySQL", "PostgreSQL", "Python"),
		graduate(7, "129", "462", "Sofía Mendoza", "Software",
			"Tester de calidad con experiencia en automatización y pruebas funcionales",
			RoleQA, "Automatización",
			"Selenium", "Cypress", "Jira", "Postman", "TestRail"),
		graduate(8, "130", "463", "Ricardo López", "Software",
			"Especialista en pruebas de software y gestión de calidad",
			RoleQA, "Tipos de pruebas",
			"Unitarias", "Funcionales", "Regresión", "Jira", "Selenium"),
		graduate(9, "131", "464", "Camila Rojas", "Software",
			"Diseñadora UX/UI especializada en prototipado y experiencia de usuario",
			RoleDesign, "Prototipado",
			"Figma", "Adobe XD", "Wireframes", "Entrevistas", "Pruebas de usabilidad"),
		graduate(10, "132", "465", "Andrés Herrera", "Software",
			"Diseñador visual especializado en interfaces y sistemas de diseño",
			RoleDesign, "Diseño visual",
			"Figma", "Adobe XD", "Guías UI", "Tipografía", "Color"),
		graduate(11, "133", "466", "Valentina Cruz", "Software",
			"Especialista en bases de datos y arquitectura de datos",
			RoleDevelopment, "Base de Datos",
			"PostgreSQL", "MySQL", "MongoDB", "Firebase", "Python"),
		graduate(12, "134", "467", "Fernando Silva", "Software",
			"Desarrollador fullstack con énfasis en gestión de datos",
			RoleDevelopment, "Fullstack",
			"MongoDB", "Node.js", "React", "Firebase", "JavaScript"),
		graduate(13, "135", "468", "Isabella García", "Salud",
			"Brinda atención médica, cuidados de enfermería, diagnóstico clínico y rehabilitación de pacientes",
			"", ""),
		graduate(14, "136", "469", "Julián Ortiz", "Agricultura",
			"Maneja técnicas de cultivo agrícola, producción pecuaria y gestión sostenible de recursos del campo",
			"", ""),
	}
}

func Postings() []posting.Posting {
	out := softwarePostings()
	return append(out, categoryPostings(len(out)+1)...)
}

func graduate(id int, nationalID, record, name, category, profile, role, spec string, skills ...string) Graduate {
	return Graduate{
		Candidate: candidate.Candidate{
			ID:             id,
			NationalID:     nationalID,
			Name:           name,
			Category:       category,
			Profile:        profile,
			Role:           role,
			Specialization: spec,
			Skills:         candidate.NormalizeSkills(skills),
		},
		RecordNumber: record,
	}
}

type softwareRow struct {
	title, description, profile string
	salary                      int64
	location, role, spec        string
	skills                      []string
	tier                        int
}

func softwarePostings() []posting.Posting {
	rows := []softwareRow{
		{"Desarrollador Full Stack Senior", "Desarrollo completo de aplicaciones web usando React, Node.js y PostgreSQL",
			"Desarrollador con experiencia en frontend y backend", 4500000, "Bogotá", RoleDevelopment, "Fullstack",
			[]string{"React", "Node.js", "PostgreSQL", "JavaScript"}, posting.PriorityHigh},
		{"Desarrollador Full Stack Java", "Desarrollo de aplicaciones empresariales con Java Spring y Angular",
			"Desarrollador Java con conocimientos en frontend", 4200000, "Medellín", RoleDevelopment, "Fullstack",
			[]string{"Java", "Spring", "Angular", "MySQL"}, posting.PriorityHigh},
		{"Desarrollador Full Stack Python", "Desarrollo de plataformas web con Django y React",
			"Desarrollador Python con experiencia frontend", 3900000, "Cali", RoleDevelopment, "Fullstack",
			[]string{"Python", "Django", "React", "PostgreSQL"}, posting.PriorityMedium},
		{"Desarrollador Frontend React Senior", "Desarrollo de interfaces de usuario modernas con React y TypeScript",
			"Especialista en desarrollo frontend", 3800000, "Bogotá", RoleDevelopment, "Frontend",
			[]string{"React", "JavaScript", "HTML", "CSS"}, posting.PriorityHigh},
		{"Desarrollador Frontend Angular", "Creación de aplicaciones web SPA con Angular y Material Design",
			"Desarrollador con experiencia en Angular", 3500000, "Medellín", RoleDevelopment, "Frontend",
			[]string{"Angular", "JavaScript", "HTML", "CSS"}, posting.PriorityMedium},
		{"Desarrollador Frontend Vue.js", "Desarrollo de interfaces interactivas con Vue.js",
			"Desarrollador frontend con conocimientos en Vue", 3300000, "Cartagena", RoleDevelopment, "Frontend",
			[]string{"JavaScript", "HTML", "CSS", "React"}, posting.PriorityLow},
		{"Desarrollador Backend Python Senior", "Desarrollo de APIs y microservicios con Python y Django",
			"Especialista en desarrollo backend", 4000000, "Bogotá", RoleDevelopment, "Backend",
			[]string{"Python", "Django", "PostgreSQL"}, posting.PriorityHigh},
		{"Desarrollador Backend Java Spring", "Desarrollo de servicios empresariales con Java Spring Boot",
			"Desarrollador Java con experiencia en Spring", 4100000, "Medellín", RoleDevelopment, "Backend",
			[]string{"Java", "Spring", "MySQL"}, posting.PriorityHigh},
		{"Desarrollador Backend Node.js", "Desarrollo de APIs REST con Node.js y Express",
			"Desarrollador JavaScript backend", 3700000, "Cali", RoleDevelopment, "Backend",
			[]string{"Node.js", "JavaScript", "MongoDB"}, posting.PriorityMedium},
		{"Especialista en Bases de Datos PostgreSQL", "Administración y optimización de bases de datos PostgreSQL",
			"Especialista en gestión de bases de datos", 3600000, "Bogotá", RoleDevelopment, "Base de Datos",
			[]string{"PostgreSQL", "Python"}, posting.PriorityMedium},
		{"Desarrollador de Bases de Datos NoSQL", "Desarrollo con MongoDB y Firebase para aplicaciones modernas",
			"Desarrollador con experiencia en NoSQL", 3400000, "Medellín", RoleDevelopment, "Base de Datos",
			[]string{"MongoDB", "Firebase", "Node.js"}, posting.PriorityLow},
		{"QA Tester Automatización Senior", "Automatización de pruebas con Selenium y Cypress",
			"Tester con experiencia en automatización", 3200000, "Bogotá", RoleQA, "Automatización",
			[]string{"Selenium", "Cypress", "Jira"}, posting.PriorityHigh},
		{"QA Tester Funcional", "Ejecución de pruebas funcionales y de regresión",
			"Tester con experiencia en pruebas manuales", 2800000, "Medellín", RoleQA, "Tipos de pruebas",
			[]string{"Funcionales", "Regresión", "Jira"}, posting.PriorityMedium},
		{"QA Tester Mobile", "Pruebas de aplicaciones móviles con Appium",
			"Tester especializado en aplicaciones móviles", 3000000, "Cali", RoleQA, "Automatización",
			[]string{"Appium", "Selenium", "Postman"}, posting.PriorityMedium},
		{"QA Tester de Performance", "Pruebas de rendimiento y carga de aplicaciones",
			"Tester con experiencia en pruebas de performance", 3300000, "Bogotá", RoleQA, "Tipos de pruebas",
			[]string{"Unitarias", "Funcionales", "Postman"}, posting.PriorityLow},
		{"UX/UI Designer Senior", "Diseño de experiencias de usuario y prototipado con Figma",
			"Diseñador con experiencia en UX/UI", 3500000, "Bogotá", RoleDesign, "Prototipado",
			[]string{"Figma", "Adobe XD", "Wireframes"}, posting.PriorityHigh},
		{"Diseñador de Interfaces UI", "Creación de interfaces visuales y sistemas de diseño",
			"Diseñador especializado en interfaces", 3200000, "Medellín", RoleDesign, "Diseño visual",
			[]string{"Figma", "Guías UI", "Tipografía", "Color"}, posting.PriorityMedium},
		{"UX Researcher", "Investigación de usuarios y pruebas de usabilidad",
			"Investigador de experiencia de usuario", 3000000, "Cali", RoleDesign, "Investigación UX",
			[]string{"Entrevistas", "Pruebas de usabilidad", "Figma"}, posting.PriorityMedium},
		{"Product Designer", "Diseño de productos digitales de extremo a extremo",
			"Diseñador de productos con visión integral", 3800000, "Bogotá", RoleDesign, "Prototipado",
			[]string{"Figma", "Adobe XD", "Entrevistas", "Wireframes"}, posting.PriorityHigh},
		{"Visual Designer", "Diseño visual y creación de identidades digitales",
			"Diseñador visual con experiencia digital", 2900000, "Cartagena", RoleDesign, "Diseño visual",
			[]string{"Adobe XD", "Tipografía", "Color", "Guías UI"}, posting.PriorityLow},
	}

	out := make([]posting.Posting, 0, len(rows))
	for i, r := range rows {
		out = append(out, posting.Posting{
			ID:                     i + 1,
			Title:                  r.title,
			Description:            r.description,
			RequiredCategory:       "Software",
			RequiredProfile:        r.profile,
			Salary:                 r.salary,
			Location:               r.location,
			RequiredRole:           r.role,
			RequiredSpecialization: r.spec,
			RequiredSkills:         r.skills,
			PriorityTier:           r.tier,
		})
	}
	return out
}

// categoryPostings are matched only by the lexical scorer: they carry a
// category and no taxonomy attributes.
func categoryPostings(firstID int) []posting.Posting {
	rows := []struct {
		title, description, category string
		salary                       int64
	}{
		{"Ingeniero Agrónomo", "Supervisión de cultivos y técnicas de producción agrícola", "Agricultura", 2800000},
		{"Técnico en Cultivos", "Manejo técnico de cultivos y control de plagas", "Agricultura", 2000000},
		{"Veterinario Pecuario", "Atención veterinaria para ganado y animales de granja", "Agricultura", 2600000},
		{"Técnico en Riego", "Diseño e instalación de sistemas de irrigación", "Agricultura", 2100000},
		{"Enfermero Profesional", "Atención directa al paciente y cuidados de enfermería", "Salud", 2400000},
		{"Técnico de Laboratorio", "Análisis clínicos y pruebas diagnósticas", "Salud", 2200000},
		{"Fisioterapeuta", "Rehabilitación física y terapias especializadas", "Salud", 2600000},
		{"Paramédico", "Atención prehospitalaria y emergencias médicas", "Salud", 2300000},
	}

	out := make([]posting.Posting, 0, len(rows))
	for i, r := range rows {
		out = append(out, posting.Posting{
			ID:               firstID + i,
			Title:            r.title,
			Description:      r.description,
			RequiredCategory: r.category,
			RequiredProfile:  r.category,
			Salary:           r.salary,
		})
	}
	return out
}
