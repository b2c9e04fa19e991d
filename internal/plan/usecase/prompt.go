package usecase

import (
	"fmt"
	"strings"
)

const (
	LanguageSpanish = "es"
	LanguageEnglish = "en"
)

const systemPromptES = `Eres un consultor de emprendimiento. Conviertes una idea de negocio en un plan de acción
concreto y ordenado. Cada paso es una sola acción verificable, escrita en imperativo, de una
línea, sin numeración ni viñetas. Ordena los pasos como deben ejecutarse: primero
investigación y validación, luego construcción, al final lanzamiento y seguimiento.
Responde SOLO con un objeto JSON de la forma {"title": "...", "steps": ["...", "..."]}.`

const systemPromptEN = `You are a startup consultant. You turn a business idea into a concrete, ordered action
plan. Each step is one verifiable action, written in the imperative, on a single line, with no
numbering or bullets. Order the steps as they must be executed: research and validation first,
then building, then launch and follow-up.
Respond ONLY with a JSON object shaped like {"title": "...", "steps": ["...", "..."]}.`

func systemPrompt(lang string) string {
	if lang == LanguageEnglish {
		return systemPromptEN
	}
	return systemPromptES
}

// buildPlanPrompt asks for at most maxSteps steps over a horizon of maxDays days.
func buildPlanPrompt(lang, idea string, maxSteps, maxDays int) string {
	var b strings.Builder
	if lang == LanguageEnglish {
		fmt.Fprintf(&b, "Business idea:\n%s\n\n", idea)
		fmt.Fprintf(&b, "Write between 3 and %d steps that can be completed within %d days.\n", maxSteps, maxDays)
		b.WriteString("The title must be short (at most 8 words).")
		return b.String()
	}
	fmt.Fprintf(&b, "Idea de negocio:\n%s\n\n", idea)
	fmt.Fprintf(&b, "Escribe entre 3 y %d pasos que se puedan completar en %d días.\n", maxSteps, maxDays)
	b.WriteString("El título debe ser corto (máximo 8 palabras).")
	return b.String()
}
