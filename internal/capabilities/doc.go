// Package capabilities assembles the built-in allocation detectors.
//
// # Capability Overview
//
//	┌───────────┬───────┬──────────────────────────┬──────────────────────────────────┐
//	│ Name      │ ID    │ Categories               │ Reports                          │
//	├───────────┼───────┼──────────────────────────┼──────────────────────────────────┤
//	│ explicit  │ AF001 │ composite-literal, call  │ slice/map literals, &T{}, new(T) │
//	│ closure   │ AF002 │ func-literal             │ func literals capturing locals   │
//	│ concat    │ AF003 │ binary, assign           │ non-constant string + and +=     │
//	│ boxing    │ AF004 │ call, assign             │ values converted to interfaces   │
//	│ knowncall │ AF005 │ call                     │ fmt.Sprintf, strings.Join, ...   │
//	└───────────┴───────┴──────────────────────────┴──────────────────────────────────┘
//
// Every capability is switched by a flag of its name:
//
//	allocfree -closure=false ./...
//
// # Adding a Capability
//
// Implement [capability.Capability] and append it to [Build]. The index picks
// up its interests automatically; a new syntax category also needs a binding
// in package category.
package capabilities
