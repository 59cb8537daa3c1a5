package llm

import "fmt"

func BuildItemExtractPrompt(lineText, categoryHint string) string {
	return fmt.Sprintf(`
You are a data extraction engine for restaurant menus.

Your task:
- Convert ONE menu line into STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Rules:
- "name" is the dish name without prices or separators.
- "description" is an appetizing description of AT MOST 25 words.
- "variants" lists EVERY price found on the line, in order of appearance.
  A line like "Dish: (Half) 100 | (Full) 180" has two variants.
  A plain "Dish - 150" has one variant with an empty label.
- "category" is %q unless the line clearly says otherwise.
- "is_veg" is true for vegetarian dishes.
- "is_spicy" is true only when the line or dish implies heat.
- "is_chefs_special" is true only when the line marks it as special.
- "is_available" is true unless the line says otherwise.
- If the line is not a priced menu item, return {"name": ""}.

Required JSON schema:
{
  "name": "string",
  "description": "string",
  "variants": [ { "label": "string", "price": number } ],
  "category": "string",
  "is_veg": boolean,
  "is_spicy": boolean,
  "is_chefs_special": boolean,
  "is_available": boolean
}

MENU LINE:
%s
`, categoryHint, lineText)
}
