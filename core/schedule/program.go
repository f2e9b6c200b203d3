package schedule

import "time"

// The 2025 cohort program: six courses taught back to back, loaded once at
// process start. Not user-editable at runtime.
const (
	courseFundamentos = "1. Fundamentos del soporte técnico"
	courseRedes       = "2. Los bits y bytes de las redes informáticas"
	courseSistemas    = "3. Los sistemas operativos y usted: Cómo convertirse en un power user"
	courseAdminTI     = "4. Administración de sistemas y servicios de infraestructura de TI"
	courseSeguridad   = "5. Seguridad informática: Defensa contra las artes oscuras"
	courseEmpleo      = "6. Acelere su búsqueda de empleo con IA"
)

// CourseShortNames maps the long course titles to display-friendly labels.
var CourseShortNames = map[string]string{
	courseFundamentos: "Fundamentos de TI",
	courseRedes:       "Redes Informáticas",
	courseSistemas:    "Sistemas Operativos",
	courseAdminTI:     "Admin. de Sistemas",
	courseSeguridad:   "Seguridad Informática",
	courseEmpleo:      "Búsqueda Empleo IA",
}

func entry(month time.Month, day int, course, module string) Entry {
	return Entry{Date: Day(2025, month, day), Course: course, Module: module}
}

// ProgramEntries returns the full 2025 cohort calendar in chronological order.
func ProgramEntries() []Entry {
	return []Entry{
		entry(time.July, 21, courseFundamentos, "Introducción a la informática"),
		entry(time.July, 22, courseFundamentos, "Hardware"),
		entry(time.July, 23, courseFundamentos, "Sistema operativo"),
		entry(time.July, 24, courseFundamentos, "Sistema operativo"),
		entry(time.July, 25, courseFundamentos, "Redes"),
		entry(time.July, 26, courseFundamentos, "Redes"),
		entry(time.July, 27, courseFundamentos, "Software"),
		entry(time.July, 28, courseFundamentos, "Software"),
		entry(time.July, 29, courseFundamentos, "Resolución de problemas"),
		entry(time.July, 30, courseRedes, "Introducción a las redes"),
		entry(time.July, 31, courseRedes, "La capa de red"),
		entry(time.August, 1, courseRedes, "La capa de red"),
		entry(time.August, 2, courseRedes, "Las capas de transporte y aplicación"),
		entry(time.August, 3, courseRedes, "Las capas de transporte y aplicación"),
		entry(time.August, 4, courseRedes, "Servicios de redes"),
		entry(time.August, 5, courseRedes, "Servicios de redes"),
		entry(time.August, 6, courseRedes, "Conexión a Internet"),
		entry(time.August, 7, courseRedes, "Conexión a Internet"),
		entry(time.August, 8, courseRedes, "La solución de problemas y el futuro de las redes"),
		entry(time.August, 9, courseRedes, "La solución de problemas y el futuro de las redes"),
		entry(time.August, 10, courseSistemas, "Navegar por el sistema"),
		entry(time.August, 11, courseSistemas, "Navegar por el sistema"),
		entry(time.August, 12, courseSistemas, "Usuarios y Permisos"),
		entry(time.August, 13, courseSistemas, "Usuarios y Permisos"),
		entry(time.August, 14, courseSistemas, "Gestión de paquetes y software"),
		entry(time.August, 15, courseSistemas, "Gestión de paquetes y software"),
		entry(time.August, 16, courseSistemas, "Sistemas de archivos"),
		entry(time.August, 17, courseSistemas, "Sistemas de archivos"),
		entry(time.August, 18, courseSistemas, "Gestión de procesos"),
		entry(time.August, 19, courseSistemas, "Gestión de procesos"),
		entry(time.August, 20, courseSistemas, "Gestión de procesos"),
		entry(time.August, 21, courseSistemas, "Los sistemas operativos en la práctica"),
		entry(time.August, 22, courseSistemas, "Los sistemas operativos en la práctica"),
		entry(time.August, 23, courseSistemas, "Los sistemas operativos en la práctica"),
		entry(time.August, 24, courseAdminTI, "¿Qué es la administración de sistemas?"),
		entry(time.August, 25, courseAdminTI, "Servicios de red e infraestructura"),
		entry(time.August, 26, courseAdminTI, "Servicios de red e infraestructura"),
		entry(time.August, 27, courseAdminTI, "Servicios de red e infraestructura"),
		entry(time.August, 28, courseAdminTI, "Servicios de software y plataforma como servicio"),
		entry(time.August, 29, courseAdminTI, "Servicios de software y plataforma como servicio"),
		entry(time.August, 30, courseAdminTI, "Servicios de directorio"),
		entry(time.August, 31, courseAdminTI, "Servicios de directorio"),
		entry(time.September, 1, courseAdminTI, "Servicios de directorio"),
		entry(time.September, 2, courseAdminTI, "Recuperación de datos y copias de seguridad"),
		entry(time.September, 3, courseAdminTI, "Recuperación de datos y copias de seguridad"),
		entry(time.September, 4, courseAdminTI, "Proyecto final"),
		entry(time.September, 5, courseAdminTI, "Proyecto final"),
		entry(time.September, 6, courseSeguridad, "Comprender las Amenazas a la Seguridad"),
		entry(time.September, 7, courseSeguridad, "Criptografía"),
		entry(time.September, 8, courseSeguridad, "Criptografía"),
		entry(time.September, 9, courseSeguridad, "Las 3 A de la ciberseguridad: Autenticación, autorización y contabilidad"),
		entry(time.September, 10, courseSeguridad, "Seguridad para sus redes"),
		entry(time.September, 11, courseSeguridad, "Seguridad para sus redes"),
		entry(time.September, 12, courseSeguridad, "Defensa en profundidad"),
		entry(time.September, 13, courseSeguridad, "Defensa en profundidad"),
		entry(time.September, 14, courseSeguridad, "Creación de una cultura empresarial para la Seguridad"),
		entry(time.September, 15, courseSeguridad, "Agilice los flujos de trabajo con IA"),
		entry(time.September, 16, courseSeguridad, "Agilice los flujos de trabajo con IA"),
		entry(time.September, 17, courseEmpleo, "Descubra sus Habilidades transferibles con IA"),
		entry(time.September, 18, courseEmpleo, "Planifique su búsqueda de empleo con IA"),
		entry(time.September, 19, courseEmpleo, "Gestione sus aplicaciones de empleo con IA"),
		entry(time.September, 20, courseEmpleo, "Preparar y practicar entrevistas con IA"),
	}
}

// Program builds the Calendar for the 2025 cohort.
func Program(maxPointsPerCourse int) *Calendar {
	return New(ProgramEntries(), maxPointsPerCourse)
}
