package deadline

// KeywordTableVersion changes whenever a term is added to or removed from a set,
// since that changes the scores of already generated plans.
const KeywordTableVersion = 1

// Terms are stored lowercase and accent-free, matching normalize's output.
// No term may contain another term; keywordTable tests enforce it.
var (
	highComplexityTerms = []string{
		// technical build-out
		"software", "aplicacion", "plataforma", "platform", "desarrollo", "development",
		"integracion", "integration", "infraestructura", "infrastructure", "backend",
		"base de datos", "database", "algoritmo", "algorithm",
		// financial structuring
		"inversion", "investment", "inversores", "investor", "financiamiento", "financing",
		"fundraising", "capital",
		// multi-market expansion
		"internacional", "international", "expansion", "global",
	}

	mediumComplexityTerms = []string{
		"validacion", "validation", "validar", "prueba", "test", "prototipo", "prototype", "mvp",
		"feedback", "retroalimentacion", "encuesta", "survey", "entrevista", "interview",
		"lanzamiento", "launch", "marketing", "publicidad", "advertising", "campana", "campaign",
		"ventas", "sales", "proceso", "process", "operaciones", "operations", "logistica",
		"logistics", "proveedores", "supplier",
	}

	lowComplexityTerms = []string{
		"planificacion", "planning", "documentacion", "documentation", "investigacion",
		"research", "configuracion", "configuration", "setup", "registro", "registration",
		"organizar", "organize", "boceto", "sketch",
	}
)

type keywordSet struct {
	name   string
	weight float64
	terms  []string
}

var keywordTable = [...]keywordSet{
	{name: "high", weight: highWeight, terms: highComplexityTerms},
	{name: "medium", weight: mediumWeight, terms: mediumComplexityTerms},
	{name: "low", weight: lowWeight, terms: lowComplexityTerms},
}
