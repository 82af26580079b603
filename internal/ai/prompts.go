package ai

import (
	"fmt"
	"strings"

	"dog-ocean/internal/domain"
)

const idealProfileSystemPrompt = "You are a working dog behavior specialist with expertise in canine personality assessment and the OCEAN model for dogs. Always follow scoring constraints strictly."

const assessmentSystemPrompt = "Eres un psicologo canino experimentado y redactas evaluaciones profesionales y constructivas."

// buildIdealProfilePrompt arma el prompt de generacion del perfil ideal.
// El bloque de reglas de rango existe porque el modelo tiende a pegarse a los
// extremos; la validacion posterior asume que igual puede ignorarlas.
func buildIdealProfilePrompt(req IdealProfileRequest, maxValue int) string {
	var sb strings.Builder

	sb.WriteString("I need you to generate the OPTIMAL OCEAN personality profile for a dog that would ideally suit the following characteristics and role:\n\n")

	sb.WriteString("Dog Characteristics:\n")
	sb.WriteString(fmt.Sprintf("- Breed: %s\n", req.Breed))
	sb.WriteString(fmt.Sprintf("- Age: %d years and %d months (total: %.1f years)\n",
		req.AgeYears, req.AgeMonths, float64(req.AgeYears)+float64(req.AgeMonths)/12.0))
	sb.WriteString(fmt.Sprintf("- Sex: %s\n", req.Gender))
	sb.WriteString(fmt.Sprintf("- Intended Use/Role: %s\n\n", req.IntendedUse))

	sb.WriteString("OCEAN Dimensions (Big Five for Dogs):\n")
	sb.WriteString("- O (Openness): Curiosity, learning ability, adaptability to new situations\n")
	sb.WriteString("- C (Conscientiousness): Reliability, impulse control, focus, trainability\n")
	sb.WriteString("- E (Extraversion): Social behavior, energy level, contact-seeking behavior\n")
	sb.WriteString("- A (Agreeableness): Friendliness, cooperation, compatibility with others\n")
	sb.WriteString("- N (Neuroticism): Nervousness, anxiety, emotional stability (negative values = stable)\n\n")

	sb.WriteString(fmt.Sprintf("Your task: Generate the IDEAL personality values that a dog should have to excel in the specified role %q.\n\n", req.IntendedUse))

	sb.WriteString("Consider breed-specific tendencies, age-appropriate maturity, sex-specific behavioral patterns and the specific requirements of the intended use case (e.g., therapy dogs need high Agreeableness and low Neuroticism, working dogs need high Conscientiousness).\n\n")

	sb.WriteString("CRITICAL SCORING RULES - STRICTLY FOLLOW THESE:\n")
	sb.WriteString(fmt.Sprintf("1. Valid Range: ALL values MUST be integers between %d and %d (inclusive).\n", -maxValue, maxValue))
	sb.WriteString(fmt.Sprintf("2. AVOID EXTREME VALUES: Do NOT use the absolute limits (%d or %d) unless absolutely necessary.\n", -maxValue, maxValue))
	sb.WriteString("3. Realistic Distribution: most values should be moderate; perfect dogs don't exist.\n\n")

	sb.WriteString("Response Format:\n")
	sb.WriteString("Return ONLY a valid JSON object with the five traits and their ideal scores. No explanations or additional text.\n\n")
	sb.WriteString(`{"O": <integer>, "C": <integer>, "E": <integer>, "A": <integer>, "N": <integer>}`)
	sb.WriteString("\n")

	return sb.String()
}

// buildAssessmentPrompt arma el prompt de evaluacion comparando los tres
// perfiles. El perfil de cuestionario ausente se formatea como placeholder
// explicito, nunca se omite en silencio.
func buildAssessmentPrompt(dog domain.DogData, measured, ideal domain.Profile, owner *domain.Profile, maxValue int) string {
	ownerStr := "No proporcionado"
	if owner != nil {
		ownerStr = owner.Format()
	}

	var sb strings.Builder
	sb.WriteString("Analiza los siguientes perfiles OCEAN de un perro:\n\n")

	sb.WriteString("Datos del perro:\n")
	sb.WriteString(fmt.Sprintf("- Nombre: %s\n", dog.DogName))
	sb.WriteString(fmt.Sprintf("- Raza: %s\n", dog.Breed))
	sb.WriteString(fmt.Sprintf("- Edad: %.1f años\n", dog.AgeTotalYears()))
	sb.WriteString(fmt.Sprintf("- Sexo: %s\n", dog.Gender))
	sb.WriteString(fmt.Sprintf("- Rol previsto: %s\n\n", dog.IntendedUse))

	sb.WriteString(fmt.Sprintf("Perfil MEDIDO (observado en las pruebas):\n%s\n\n", measured.Format()))
	sb.WriteString(fmt.Sprintf("Perfil IDEAL (para raza y rol previsto):\n%s\n\n", ideal.Format()))
	sb.WriteString(fmt.Sprintf("Perfil CUESTIONARIO (expectativas del dueño):\n%s\n\n", ownerStr))

	sb.WriteString(fmt.Sprintf("Rango de valores: %d a %d\n\n", -maxValue, maxValue))

	sb.WriteString("Redacta una evaluacion profesional cubriendo:\n")
	sb.WriteString("1. Aptitud general: que tan bien encaja el perro con el rol previsto.\n")
	sb.WriteString("2. Fortalezas: rasgos positivos observados.\n")
	sb.WriteString("3. Areas de desarrollo: desviaciones respecto del ideal.\n")
	sb.WriteString("4. Expectativas del dueño: como se comparan con lo medido (si hay cuestionario).\n")
	sb.WriteString("5. Recomendaciones concretas de entrenamiento o desarrollo.\n\n")
	sb.WriteString("Escribe en un tono profesional pero comprensible. La evaluacion debe ser constructiva.\n")

	return sb.String()
}
