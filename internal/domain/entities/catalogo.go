package entities

// Empresa is a counterpart company or carrier from the catalog.
type Empresa struct {
	ID     int64  `json:"id_empresa"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}

// TipoEnlace is a link type from the catalog. SinCargo marks types exempt
// from recurring charges.
type TipoEnlace struct {
	ID       int64  `json:"id_tipo_enlace"`
	Nombre   string `json:"nombre"`
	SinCargo bool   `json:"sin_cargo"`
	Activo   bool   `json:"activo"`
}
