package domain

// CatalogCategory is a seeded category with the names of its concepts.
type CatalogCategory struct {
	Name        string
	Type        TransactionType
	Description string
	Concepts    []string
}

// DefaultCatalog is the reference taxonomy loaded by the seeder.
var DefaultCatalog = []CatalogCategory{
	// Ingresos
	{
		Name:        "Aportes",
		Type:        TransactionTypeIngreso,
		Description: "Aportes de afiliados",
		Concepts:    []string{"Aportes Ordinarios", "Multas Asambles"},
	},
	{
		Name:        "Ingresos Varios",
		Type:        TransactionTypeIngreso,
		Description: "Otros ingresos",
		Concepts: []string{
			"Intereses y redimientos",
			"otros ingresos (aporte E.T.B.)",
			"Otros ingresos",
		},
	},

	// Egresos
	{
		Name:        "Administración de Personal",
		Type:        TransactionTypeEgreso,
		Description: "Gastos de personal",
		Concepts: []string{
			"Sueldos y horas extras",
			"Auxilio de transporte",
			"Bonificación empleados",
			"Cesantías",
			"Intereses/Cesantías",
			"Primas de junio y navidad",
			"Vacaciones",
			"Dotación",
			"Aportes salud, pensión y riesgos",
			"Aportes Compensar+SENA+ICBF",
		},
	},
	{
		Name:        "Administración General",
		Type:        TransactionTypeEgreso,
		Description: "Gastos administrativos",
		Concepts: []string{
			"Reunión Asamblea General",
			"Reuniones J.D.",
			"Reunión Comités y Delegados",
			"Papelería y útiles de oficina",
			"Mantenimiento equipos de oficina",
			"Compra de equipos de oficina",
			"Suscripciones y publicaciones",
			"Otros servicios informáticos",
			"Asesoría jurídica",
			"Procesos jurídicos",
			"Asesoría Salud",
			"Asesoría Financiera",
			"Asesoría contable",
			"Asesoría comunicaciones",
			"Cafetería y aseo",
			"Transportes",
			"Correspondencia",
			"Gastos bancarios (Chequeras y 4 x 1000)",
			"Depreciación",
			"Otros gastos para Afiliados",
			"Locativas",
			"SGSST",
		},
	},
	{
		Name:        "Auxilios",
		Type:        TransactionTypeEgreso,
		Description: "Auxilios a afiliados",
		Concepts:    []string{"Nacimiento", "Auxilios solidaridad"},
	},
	{
		Name:        "Actividad Sindical",
		Type:        TransactionTypeEgreso,
		Description: "Actividades sindicales",
		Concepts: []string{
			"Agitación y propaganda",
			"Gastos de representación",
			"Capacitación sindical",
			"Solidaridad sindical",
			"Gastos de viaje-viáticos",
			"Apoyo social",
			"Actividad Asociados",
			"Defensa ETB",
			"Negociación convención",
		},
	},
	{
		Name:        "Comisiones Estatutarias",
		Type:        TransactionTypeEgreso,
		Description: "Comisiones estatutarias",
		Concepts:    []string{"Capacitación Técnica", "Fomento al deporte", "Fomento a la cultura"},
	},
	{
		Name:        "Gastos de Protección y S.S.",
		Type:        TransactionTypeEgreso,
		Description: "Gastos de protección",
		Concepts:    []string{"Seguros de vida"},
	},
	{
		Name:        "Gastos Aprobados por Asamblea",
		Type:        TransactionTypeEgreso,
		Description: "Gastos aprobados",
		Concepts:    []string{"Gastos aprobados por asamblea"},
	},
}
