package domain

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&PropertyType{},
		&Property{},
		&PropertyImage{},
		&Review{},
		&Like{},
		&Message{},
		&User{},
	}
}
