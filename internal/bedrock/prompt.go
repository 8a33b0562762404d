package bedrock

import "strings"

// BuildPrompt produces the recipe instruction for a list of ingredients.
// An empty list still yields a valid prompt with an empty join.
func BuildPrompt(ingredients []string) string {
	return "Suggest a recipe idea using these ingredients: " + strings.Join(ingredients, ", ") + "."
}

// WrapConversation embeds a prompt in the Human/Assistant turn template
// Claude models on Bedrock expect.
func WrapConversation(prompt string) string {
	return "\n\nHuman: " + prompt + "\n\nAssistant:"
}
