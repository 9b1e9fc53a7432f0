package advisor

import (
	"fmt"
	"strings"
)

const (
	adviceSystemPrompt = "You are an expert renewable energy advisor for EcoHub, a renewable energy marketplace. " +
		"Give personalized, actionable advice for moving to clean energy. Always include relevant emojis " +
		"to keep the advice engaging, focus on SDG 13 (Climate Action) and stress the environmental impact."

	listingSystemPrompt = "You are a marketing expert for the EcoHub renewable energy marketplace. " +
		"Write compelling, clear listings that attract buyers. Always include relevant emojis " +
		"and focus on environmental benefits and community impact."
)

func advicePrompt(req AdviceRequest) string {
	return fmt.Sprintf(`I'm looking for renewable energy advice for my home through EcoHub. Here are my details:
- Location: %s
- Roof size: %s
- Current energy usage: %s kWh/month
- Budget: %s

Please provide personalized recommendations for:
1. Best renewable energy options for my situation (solar, wind, etc.)
2. Estimated costs and savings with ROI timeline
3. Environmental impact and CO2 reduction potential
4. Timeline for implementation
5. Any specific considerations for my location
6. How to connect with local energy suppliers through the marketplace

Focus on climate action (SDG 13) and make the advice engaging with relevant emojis.
Keep the advice practical, actionable and inspiring.`,
		orDefault(req.Location, "your area"),
		orDefault(req.RoofSize, "unknown"),
		usageText(req.EnergyUsage),
		orDefault(req.Budget, "flexible"),
	)
}

func chatPrompt(req ChatRequest) string {
	details := make([]string, 0, 2)
	if req.Location != "" {
		details = append(details, "User location: "+req.Location)
	}
	details = append(details, "User role: "+orDefault(req.Role, "consumer"))

	return fmt.Sprintf(`The user asked: %q
Context: %s

Give a helpful, conversational answer about renewable energy. Include:
- Practical advice related to the question
- Relevant emojis to keep it engaging
- The climate action (SDG 13) and environmental angle
- A pointer to the EcoHub marketplace when relevant

Answer naturally as the EcoHub AI Renewable Energy Advisor.`,
		req.Message, strings.Join(details, " | "))
}

func listingPrompt(req ListingCopyRequest) string {
	price := "competitive"
	if req.PricePerKWh > 0 {
		price = fmt.Sprintf("%g", req.PricePerKWh)
	}
	available := "various amounts"
	if req.AvailableKWh > 0 {
		available = fmt.Sprintf("%g", req.AvailableKWh)
	}

	return fmt.Sprintf(`Create an attractive listing for selling %[1]s energy on the EcoHub marketplace:
- Energy type: %[1]s
- Price per kWh: %[2]s
- Location: %[3]s
- Available amount: %[4]s kWh

Generate:
1. A compelling title (max 60 characters) with relevant emojis
2. A clear description (max 250 characters) emphasizing environmental benefits

Focus on climate action, community benefits and clean energy for neighbors.
Include relevant emojis like 🌱, 🌍, ⚡, 🌞, 💚.
Format as: TITLE: [title] | DESCRIPTION: [description]`,
		orDefault(req.EnergyType, "renewable"), price, orDefault(req.Location, "our location"), available)
}

func usageText(usage float64) string {
	if usage <= 0 {
		return "unknown"
	}

	return fmt.Sprintf("%g", usage)
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}

	return value
}
