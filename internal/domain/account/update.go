package account

import (
	"strings"

	"github.com/Jeffry-N/Beiruti-Fade/internal/httperr"
)

// ===============================
// Partial Update Builder
// ===============================

type Assignment struct {
	Column string
	Value  string
}

// UpdatePlan is the ordered list of column assignments plus the id predicate,
// produced before any store call.
type UpdatePlan struct {
	Kind        Kind
	ID          uint
	Assignments []Assignment
}

// BuildUpdate filters the payload through the field registry for the kind.
// Keys missing from the registry are silently ignored. If nothing applicable
// remains, no statement is built.
func BuildUpdate(kind Kind, id uint, payload map[string]string) (*UpdatePlan, error) {
	plan := &UpdatePlan{Kind: kind, ID: id}

	for _, f := range FieldsFor(kind) {
		v, ok := payload[f.Name]
		if !ok || !supplied(f, v) {
			continue
		}
		plan.Assignments = append(plan.Assignments, Assignment{
			Column: f.Column,
			Value:  v,
		})
	}

	if len(plan.Assignments) == 0 {
		return nil, httperr.ErrBusiness("no_fields_provided")
	}

	return plan, nil
}

// supplied treats an empty string as "field left out". The mobile client also
// sends the literal text "undefined" for an untouched password input.
func supplied(f Field, v string) bool {
	if v == "" {
		return false
	}
	if f.Name == "password" && v == "undefined" {
		return false
	}
	return true
}

// SQL returns the parameterized UPDATE statement. Identifiers come only from
// the field registry and the kind's table; untrusted data travels exclusively
// through the placeholders.
func (p *UpdatePlan) SQL() string {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(p.Kind.Table())
	b.WriteString(" SET ")
	for i, a := range p.Assignments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Column)
		b.WriteString(" = ?")
	}
	b.WriteString(" WHERE id = ?")
	return b.String()
}

// Args returns the bound values in placeholder order, id last.
func (p *UpdatePlan) Args() []any {
	args := make([]any, 0, len(p.Assignments)+1)
	for _, a := range p.Assignments {
		args = append(args, a.Value)
	}
	return append(args, p.ID)
}
