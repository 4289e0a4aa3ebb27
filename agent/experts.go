package agent

import (
	"context"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/docs"
	"github.com/etnz/inventory/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// newFacilitator creates the chat talking to the user.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and of solving the user's request.

			The user resells products: they buy them, pay for the shipping and sell them again.
			Learn about the experts' skills from the Tools and ask them questions.
			They keep the context of your previous questions.

			Devise a plan of questions for each expert and come up with the best response to the user's request.
			Answer in markdown.
			`),
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketResearcher creates an expert grounded on Google Search, for
// questions about market prices and demand.
func NewMarketResearcher() *Expert {
	return &Expert{
		Name: "MarketResearcher",
		Description: `This is an expert of online marketplaces.
		Ask the MarketResearcher about current market prices, competition and demand for a product.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert of online marketplaces. You leverage Google Search to find the
			current prices a product sells for, and you ground your assertions in what you found.
			`),
		},
	}
}

// NewAdvisor creates the expert reading the user's inventory.
func NewAdvisor(s *inventory.Store, c *inventory.Calculator) *Expert {
	lib := []Function{ListProducts(s, c), Convert(c)}

	return &Expert{
		Name: "Advisor",
		Description: `This is the pricing Advisor. It reads the user's inventory: every product with its
		purchase price, sale price, shipping cost and the resulting profit.
		Ask the Advisor about the profit of the user's products and about prices to sell them.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are a pricing advisor in charge of the user's inventory.
			Use the Tools to list the products and their profit, and to convert amounts.
			Here is how the profit is computed:

			` + topic("profit")),
		},
		Library: NewLibrary(lib),
	}
}

// ListProducts declares the function rendering the products of s.
func ListProducts(s *inventory.Store, c *inventory.Calculator) *Func {
	const name = "ListProducts"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "ListProducts lists the user's products with their profit and the totals over all products.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"term": {
						Type:        genai.TypeString,
						Description: "Only list products whose name contains this term, case insensitive. Lists all products by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the products followed by the totals.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			term, _ := args["term"].(string)
			v, err := inventory.NewView(c, s.Products(), inventory.Filter{Term: term})
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, renderer.Products(v))
		},
	}
}

// Convert declares the function converting amounts with c.
func Convert(c *inventory.Calculator) *Func {
	const name = "Convert"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: fmt.Sprintf("Convert converts an amount between %s and %s with the user's exchange rate (%s %s for 1 %s).",
				c.Local(), c.Foreign(), c.Rate(), c.Local(), c.Foreign()),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"amount": {Type: genai.TypeNumber, Description: "The positive amount to convert."},
					"to":     {Type: genai.TypeString, Enum: []string{c.Local(), c.Foreign()}, Description: "The target currency."},
				},
				Required: []string{"amount", "to"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The converted amount, formatted.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			amount, ok := args["amount"].(float64)
			if !ok {
				return failure(id, name, fmt.Errorf("argument 'amount' is not a number but %T", args["amount"]))
			}
			to, _ := args["to"].(string)
			m, err := c.Convert(decimal.NewFromFloat(amount), to)
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, m.String())
		},
	}
}

func topic(name string) string {
	doc, err := docs.GetTopic(name)
	if err != nil {
		panic(err)
	}
	return doc
}
