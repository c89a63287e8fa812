package matching

import "strings"

type wordSet map[string]struct{}

// Vocabulary holds the connector words dropped from free text and the
// technical terms preferred over generic words when both are present.
type Vocabulary struct {
	stop      wordSet
	technical wordSet
}

func NewVocabulary(stopWords, technicalTerms []string) Vocabulary {
	return Vocabulary{stop: toWordSet(stopWords), technical: toWordSet(technicalTerms)}
}

func DefaultVocabulary() Vocabulary {
	return NewVocabulary(defaultStopWords, defaultTechnicalTerms)
}

// RelevantWords lowercases text, splits it on whitespace and removes stop
// words. When any technical term survives only the technical terms are kept.
func (v Vocabulary) RelevantWords(text string) wordSet {
	fields := strings.Fields(strings.ToLower(text))
	filtered := make(wordSet, len(fields))
	for _, f := range fields {
		if v.isStopWord(f) {
			continue
		}
		filtered[f] = struct{}{}
	}

	technical := make(wordSet)
	for w := range filtered {
		if v.isTechnical(w) {
			technical[w] = struct{}{}
		}
	}
	if len(technical) > 0 {
		return technical
	}
	return filtered
}

// isStopWord and isTechnical expect an already lowercased word.
func (v Vocabulary) isStopWord(w string) bool {
	_, ok := v.stop[w]
	return ok
}

func (v Vocabulary) isTechnical(w string) bool {
	_, ok := v.technical[w]
	return ok
}

func toWordSet(words []string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

func intersectionSize(a, b wordSet) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

var defaultStopWords = []string{
	"de", "del", "la", "el", "los", "las", "en", "con", "por", "para", "y", "o", "un", "una",
	"este", "esta", "ese", "esa", "su", "sus", "se", "que", "es", "son", "como", "más", "muy",
	"al", "le", "lo", "te", "me", "nos", "les", "pero", "sino", "aunque", "porque", "cuando",
	"donde", "quien", "cual", "cuales", "todo", "toda", "todos", "todas", "otro", "otra", "otros",
	"otras", "mismo", "misma", "mismos", "mismas", "tanto", "tanta", "tantos", "tantas",
}

var defaultTechnicalTerms = []string{
	// software
	"software", "desarrollo", "programacion", "informatica", "diseño", "sistemas", "aplicaciones",
	"web", "movil", "frontend", "backend", "fullstack", "digital",
	// sport and physical activity
	"deportes", "fisica", "entrenamiento", "gimnasio", "fitness",
	"terapia", "rehabilitacion", "nutricion", "educacion",
	// agriculture
	"agricola", "agricultura", "cultivos", "agronomia", "campo",
	"cosecha", "ganaderia", "veterinaria", "agroindustria",
	// environment
	"ambiental", "medio", "ambiente", "ecologia", "sostenibilidad", "conservacion", "recursos",
	"naturales", "biodiversidad", "contaminacion", "reciclaje", "energia", "renovable",
	// arts and crafts
	"artes", "oficios", "artesanias", "manualidades", "creatividad", "pintura",
	"textil", "madera", "metal", "joyeria", "decoracion",
	// commerce
	"comercio", "ventas", "marketing", "publicidad", "mercadeo", "distribucion",
	"atencion", "cliente", "negociacion", "productos", "servicios", "logistica",
	// construction
	"construccion", "edificacion", "arquitectura", "civil", "estructural", "obra",
	"proyecto", "planos", "materiales", "supervision", "acabados", "instalaciones",
	// electronics and automation
	"electronica", "automatizacion", "control", "industrial", "robotica", "sensores",
	"circuitos", "microcontroladores", "instrumentacion", "mantenimiento",
	// management
	"gestion", "administracion", "management", "direccion", "coordinacion", "planificacion",
	"organizacion", "liderazgo", "proyectos", "procesos", "calidad", "estrategia",
	// hospitality and tourism
	"hoteleria", "turismo", "hospitalidad", "eventos", "gastronomia",
	"recepcion", "reservas", "entretenimiento",
	// industrial mechanics
	"mecanica", "maquinaria", "equipos", "reparacion",
	"soldadura", "torneria", "fresadora", "hidraulica", "neumatica", "produccion",
	// health
	"salud", "medicina", "enfermeria", "farmacia",
	"laboratorio", "clinico", "diagnostico", "tratamiento", "cuidado", "paciente",
}
