package models

// ImpactArea is a reference row describing a category of community impact.
type ImpactArea struct {
	AreaID      string `db:"area_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}
