package models

// All lists every model migrated at startup.
func All() []any {
	return []any{&User{}, &Plant{}, &Disease{}, &History{}}
}
