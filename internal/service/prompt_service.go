package service

import (
	"fmt"
	"strings"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

// PromptCompiler turns an item plus a persona into the (system, user)
// instruction pair for the completion service. The persona's shape picks the
// identity strategy: populated slider traits select the legacy behavioral
// path, free-text descriptions select the narrative path. The media type
// picks the task: "" compiles the script task, IMAGE and VIDEO compile
// render-prompt tasks.
type PromptCompiler struct{}

func NewPromptCompiler() *PromptCompiler {
	return &PromptCompiler{}
}

const genericIdentity = "You are a helpful social media assistant."

func (pc *PromptCompiler) Compile(item *models.Item, persona *models.Persona, platforms []string, mediaType string) *transfer.PromptPair {
	var system string
	if traits, ok := persona.Traits(); ok {
		system = pc.legacySystemPrompt(item, persona, traits)
	} else {
		system = pc.narrativeSystemPrompt(persona)
	}
	return &transfer.PromptPair{
		System: system,
		User:   pc.userPrompt(item, persona, platforms, mediaType),
	}
}

func (pc *PromptCompiler) narrativeSystemPrompt(persona *models.Persona) string {
	var system strings.Builder
	if persona == nil {
		system.WriteString(genericIdentity)
		system.WriteString("\n")
	} else {
		fmt.Fprintf(&system, "You are %s, a digitized brand persona.\n", persona.Name)
		if persona.Description != "" {
			fmt.Fprintf(&system, "Personality: %s\n", persona.Description)
		}
		if persona.VisualDescription != "" {
			fmt.Fprintf(&system, "Visual style: %s\n", persona.VisualDescription)
		}
	}
	system.WriteString("You design visual concepts, scripts and captions for short-form social content.")
	return system.String()
}

// legacySystemPrompt is the superseded slider-based strategy, kept for
// personas still carrying personality_traits blobs. Each slider injects an
// imperative directive when it crosses its cut point (>7 or <4).
func (pc *PromptCompiler) legacySystemPrompt(item *models.Item, persona *models.Persona, traits *models.PersonaTraits) string {
	var behavioral strings.Builder

	if traits.SassLevel > 7 {
		behavioral.WriteString("- CRITICAL: Actively roast the viewer. Mock the simplicity of the recipe. Be ruthless.\n")
	} else if traits.SassLevel < 4 {
		behavioral.WriteString("- Be very polite and encouraging. Treat the viewer like a beginner.\n")
	}

	if traits.EnergyLevel > 7 {
		behavioral.WriteString("- CRITICAL: HYPE IT UP. Use short, punchy sentences. USE CAPS for emphasis. This is the most exciting thing ever.\n")
	} else if traits.EnergyLevel < 4 {
		behavioral.WriteString("- Speak in a monotone, bored voice. You are tired of cooking. Sigh often.\n")
	}

	if traits.NostalgiaLevel > 7 {
		story := item.Story
		if story == "" {
			story = "Family Tradition"
		}
		fmt.Fprintf(&behavioral, "- STRATEGY: Focus on MEMORY and ORIGIN. Tell this specific story: %q. Lament modern shortcuts.\n", story)
	}

	voice := persona.Voice()
	if voice == "" {
		voice = "Generic"
	}

	return fmt.Sprintf(`You are %s, a digitized chef persona.
Voice: %s

Your Core Personality Traits (1-10):
- Sass/Roasting: %d
- Energy/Hype: %d
- Nostalgia: %d

STRICT BEHAVIORAL INSTRUCTIONS:
%s
Your goal is to write a viral optimization script for a cooking video.
The script should be under 45 seconds when read aloud.
Include [VISUAL] cues in brackets.`,
		persona.Name, voice, traits.SassLevel, traits.EnergyLevel, traits.NostalgiaLevel, behavioral.String())
}

func (pc *PromptCompiler) userPrompt(item *models.Item, persona *models.Persona, platforms []string, mediaType string) string {
	var user strings.Builder
	writeItemFacts(&user, item, platforms)

	switch mediaType {
	case models.MediaTypeVideo:
		user.WriteString("\nTask: Write one cinematic video generation prompt for this subject.\n")
		user.WriteString("Structure: [Subject & Action] + [Camera Motion] + [Environment/Lighting] + [Style/Quality].\n")
		user.WriteString("Keep the prompt under 50 words. Return only the prompt text.\n")
		if persona != nil && persona.AvatarURL != "" {
			user.WriteString("The persona appears on camera: keep their face and styling consistent with their registered avatar image.\n")
		}
	case models.MediaTypeImage:
		user.WriteString("\nTask: Write a photorealistic descriptive image prompt for this subject, plus a separate social media caption.\n")
		user.WriteString("Respond with a JSON object with exactly two keys: \"prompt\" and \"caption\".\n")
	default:
		user.WriteString("\nTask: Write a script that captures attention immediately.\n")
		user.WriteString("Constraint: Identify one specific ingredient or step to focus your personality on.\n")
	}

	return user.String()
}

func writeItemFacts(b *strings.Builder, item *models.Item, platforms []string) {
	label := "Product"
	if item.Kind == models.ItemKindRecipe {
		label = "Recipe"
	}
	fmt.Fprintf(b, "%s: %s\n", label, item.Name)
	fmt.Fprintf(b, "Description: %s\n", item.Description)
	if features := item.FeatureList(); len(features) > 0 {
		fmt.Fprintf(b, "Key features: %s\n", strings.Join(features, ", "))
	}
	if steps := item.StepList(); len(steps) > 0 {
		fmt.Fprintf(b, "Steps: %s\n", strings.Join(steps, "; "))
	}
	story := item.Story
	if story == "" {
		story = "No backstory provided"
	}
	fmt.Fprintf(b, "Origin Story: %s\n", story)
	fmt.Fprintf(b, "Target Platforms: %s\n", strings.Join(platforms, ", "))
}
