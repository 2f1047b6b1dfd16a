// Package model contains the GORM representations of the persisted entities.
package model

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&SessionModel{},
		&FileModel{},
	}
}
