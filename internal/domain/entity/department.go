package entity

// Department agrupa salidas de inventario para reportes; no tiene efecto de negocio.
type Department struct {
	ID   string
	Name string
}

// Category clasifica productos del catálogo.
type Category struct {
	ID   string
	Name string
}

// Unit unidad de medida de un producto (ej. pieza, caja, galón).
type Unit struct {
	ID   string
	Name string
}
