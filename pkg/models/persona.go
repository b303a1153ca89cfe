// Package models defines the domain types shared across services,
// the orchestrator, and the API layer.
package models

import "strings"

// Persona identifies a conversation participant. User attributes
// human-originated messages; the other ten are model-backed roles.
type Persona string

// The fixed persona roster.
const (
	PersonaUser               Persona = "User"
	PersonaCoordinator        Persona = "Coordinator"
	PersonaBusinessAnalyst    Persona = "BusinessAnalyst"
	PersonaTechnicalArchitect Persona = "TechnicalArchitect"
	PersonaSeniorDeveloper    Persona = "SeniorDeveloper"
	PersonaJuniorDeveloper    Persona = "JuniorDeveloper"
	PersonaSeniorQA           Persona = "SeniorQA"
	PersonaJuniorQA           Persona = "JuniorQA"
	PersonaUXEngineer         Persona = "UXEngineer"
	PersonaUIEngineer         Persona = "UIEngineer"
	PersonaDocumentWriter     Persona = "DocumentWriter"
)

// AgentPersonas lists the ten model-backed personas in delegation order.
// User is excluded: it only attributes message origin.
var AgentPersonas = []Persona{
	PersonaCoordinator,
	PersonaBusinessAnalyst,
	PersonaTechnicalArchitect,
	PersonaSeniorDeveloper,
	PersonaJuniorDeveloper,
	PersonaSeniorQA,
	PersonaJuniorQA,
	PersonaUXEngineer,
	PersonaUIEngineer,
	PersonaDocumentWriter,
}

// personaAliases maps normalized short forms to canonical personas.
// Keys are lowercase with separators stripped (see normalizePersonaName).
var personaAliases = map[string]Persona{
	"ba":        PersonaBusinessAnalyst,
	"ta":        PersonaTechnicalArchitect,
	"srdev":     PersonaSeniorDeveloper,
	"jrdev":     PersonaJuniorDeveloper,
	"srqa":      PersonaSeniorQA,
	"jrqa":      PersonaJuniorQA,
	"ux":        PersonaUXEngineer,
	"ui":        PersonaUIEngineer,
	"doc":       PersonaDocumentWriter,
	"docs":      PersonaDocumentWriter,
	"docwriter": PersonaDocumentWriter,
}

// canonicalPersonas maps normalized full names to canonical personas.
var canonicalPersonas = func() map[string]Persona {
	m := make(map[string]Persona, len(AgentPersonas)+1)
	m[normalizePersonaName(string(PersonaUser))] = PersonaUser
	for _, p := range AgentPersonas {
		m[normalizePersonaName(string(p))] = p
	}
	return m
}()

// normalizePersonaName lowercases the name and strips whitespace,
// underscores, and hyphens so "senior_developer", "Senior-Developer",
// and "seniordeveloper" all resolve identically.
func normalizePersonaName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case ' ', '\t', '_', '-':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolvePersona resolves a model-provided persona name to a canonical
// persona, tolerating case, whitespace, separators, and a fixed alias
// table. The second return value reports whether the name was recognized.
func ResolvePersona(name string) (Persona, bool) {
	key := normalizePersonaName(name)
	if key == "" {
		return "", false
	}
	if p, ok := canonicalPersonas[key]; ok {
		return p, true
	}
	if p, ok := personaAliases[key]; ok {
		return p, true
	}
	return "", false
}

// IsAgent reports whether p is one of the ten model-backed personas.
func (p Persona) IsAgent() bool {
	for _, a := range AgentPersonas {
		if p == a {
			return true
		}
	}
	return false
}

// String returns the canonical identifier.
func (p Persona) String() string { return string(p) }
