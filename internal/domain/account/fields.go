package account

// ===============================
// Field Schema Registry
// ===============================

// Field describes one mutable account column and the payload key clients use
// for it. Username and id are deliberately absent: they are lookup keys, not
// updatable fields.
type Field struct {
	Name       string // payload key
	Column     string // table column
	BarberOnly bool
}

// registry order is load-bearing: generated placeholders bind values in this
// exact order.
var registry = []Field{
	{Name: "fullName", Column: "full_name"},
	{Name: "email", Column: "email"},
	{Name: "password", Column: "password"},
	{Name: "bio", Column: "bio", BarberOnly: true},
	{Name: "profileImage", Column: "image_url", BarberOnly: true},
}

// FieldsFor returns the ordered mutable fields for the kind.
func FieldsFor(kind Kind) []Field {
	out := make([]Field, 0, len(registry))
	for _, f := range registry {
		if f.BarberOnly && kind != KindBarber {
			continue
		}
		out = append(out, f)
	}
	return out
}
