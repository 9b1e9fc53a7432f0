// Package advisor produces renewable energy advice, listing copy and chat answers through
// an OpenAI compatible chat completion API. Every operation degrades to canned text when the
// API is not configured or fails, so callers always get something to show.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/UnknownOlympus/ecohub/internal/config"
	"github.com/UnknownOlympus/ecohub/internal/metrics"
	"github.com/sashabaranov/go-openai"
)

// CarbonKgPerKWh is the rough CO2 saving, in kg, of one kWh of renewable energy.
const CarbonKgPerKWh = 0.5

const (
	defaultListingTitle       = "Renewable Energy Available"
	defaultListingDescription = "Clean renewable energy available for purchase."

	highDemandAdvice = "I'm currently experiencing high demand. Here's some general renewable energy advice: " +
		"Consider solar panels for your roof, they can reduce your electricity bill by 50-90%. " +
		"Wind energy is great for open areas. Check our marketplace for local suppliers!"
	apologyAdvice = "I'm sorry, I'm having trouble providing advice right now. Please try again later. 🌱"
	// highDemandCarbonKg is the savings figure shown with the high demand advice.
	highDemandCarbonKg = 500
)

const (
	kindAdvice  = "advice"
	kindChat    = "chat"
	kindListing = "listing"

	outcomeOK       = "ok"
	outcomeFallback = "fallback"
)

var (
	// ErrUnavailable is reported when no API key is configured.
	ErrUnavailable = errors.New("ai client is not configured")
	// ErrEmptyCompletion is reported when the API answers without any choice.
	ErrEmptyCompletion = errors.New("ai completion has no choices")
)

// emojiPattern matches runs of emoji and pictograph code points.
var emojiPattern = regexp.MustCompile(
	`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}` +
		`\x{2702}-\x{27B0}\x{24C2}-\x{1F251}]+`,
)

// ChatClient is the part of the go-openai client used by the advisor.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type AdviceRequest struct {
	Location    string  `json:"location"`
	RoofSize    string  `json:"roof_size"`
	EnergyUsage float64 `json:"energy_usage"`
	Budget      string  `json:"budget"`
}

type AdviceMetadata struct {
	Location    string  `json:"location"`
	RoofSize    string  `json:"roof_size"`
	EnergyUsage float64 `json:"energy_usage"`
	Budget      string  `json:"budget"`
	Fallback    bool    `json:"fallback,omitempty"`
}

// Advice is the answer to an AdviceRequest. Error is set when the apology text was used.
type Advice struct {
	Advice                string         `json:"advice"`
	CarbonSavingsEstimate float64        `json:"carbon_savings_estimate"`
	Emojis                []string       `json:"emojis"`
	Metadata              AdviceMetadata `json:"metadata"`
	Error                 string         `json:"error,omitempty"`
}

type ChatRequest struct {
	Message  string
	Location string
	Role     string
}

type ChatReply struct {
	Response string   `json:"response"`
	Emojis   []string `json:"emojis"`
	Fallback bool     `json:"fallback,omitempty"`
}

type ListingCopyRequest struct {
	EnergyType   string  `json:"energy_type"`
	PricePerKWh  float64 `json:"price_per_kwh"`
	Location     string  `json:"location"`
	AvailableKWh float64 `json:"available_kwh"`
}

type ListingCopy struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SuggestedPrice *float64 `json:"suggested_price,omitempty"`
	Emojis         []string `json:"emojis"`
	Fallback       bool     `json:"fallback,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// Advisor talks to the chat completion API. A nil client makes every call use its fallback text.
type Advisor struct {
	log     *slog.Logger
	client  ChatClient
	model   string
	timeout time.Duration
	metrics *metrics.Metrics
}

// NewClient builds a go-openai client from the configuration, or returns nil when no API key is set.
func NewClient(cfg config.AIConfig) ChatClient {
	if cfg.APIKey == "" {
		return nil
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return openai.NewClientWithConfig(clientConfig)
}

func New(log *slog.Logger, client ChatClient, cfg config.AIConfig, metrics *metrics.Metrics) *Advisor {
	return &Advisor{
		log:     log,
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		metrics: metrics,
	}
}

// Advice answers a structured request for home renewable energy advice.
func (a *Advisor) Advice(ctx context.Context, req AdviceRequest) Advice {
	metadata := AdviceMetadata{
		Location:    req.Location,
		RoofSize:    req.RoofSize,
		EnergyUsage: req.EnergyUsage,
		Budget:      req.Budget,
	}

	text, err := a.complete(ctx, adviceSystemPrompt, advicePrompt(req), 600, 0.7)
	if err != nil {
		a.record(ctx, kindAdvice, err)
		if isHighDemand(err) {
			metadata.Fallback = true
			return Advice{
				Advice:                highDemandAdvice,
				CarbonSavingsEstimate: highDemandCarbonKg,
				Emojis:                []string{"☀️", "💡", "🌱"},
				Metadata:              metadata,
			}
		}

		return Advice{
			Advice:   apologyAdvice,
			Emojis:   []string{"🌱"},
			Metadata: metadata,
			Error:    "AI service error: " + err.Error(),
		}
	}
	a.record(ctx, kindAdvice, nil)

	return Advice{
		Advice:                text,
		CarbonSavingsEstimate: CarbonSavings(req.EnergyUsage),
		Emojis:                ExtractEmojis(text),
		Metadata:              metadata,
	}
}

// Chat answers a free-form question of a marketplace user.
func (a *Advisor) Chat(ctx context.Context, req ChatRequest) ChatReply {
	text, err := a.complete(ctx, adviceSystemPrompt, chatPrompt(req), 600, 0.7)
	if err != nil {
		a.record(ctx, kindChat, err)
		if isHighDemand(err) {
			return ChatReply{Response: highDemandAdvice, Emojis: []string{"☀️", "💡", "🌱"}, Fallback: true}
		}

		return ChatReply{Response: apologyAdvice, Emojis: []string{"🌱"}, Fallback: true}
	}
	a.record(ctx, kindChat, nil)

	return ChatReply{Response: text, Emojis: ExtractEmojis(text)}
}

// ListingCopy writes a title and a description for a new listing.
func (a *Advisor) ListingCopy(ctx context.Context, req ListingCopyRequest) ListingCopy {
	text, err := a.complete(ctx, listingSystemPrompt, listingPrompt(req), 400, 0.8)
	if err != nil {
		a.record(ctx, kindListing, err)
		if isHighDemand(err) {
			energyType := orDefault(req.EnergyType, "Renewable")
			return ListingCopy{
				Title: fmt.Sprintf("Premium %s Energy - Clean & Reliable", energyType),
				Description: fmt.Sprintf("High-quality %s energy available for purchase. "+
					"Reduce your carbon footprint and save money!", strings.ToLower(energyType)),
				Emojis:   []string{"☀️", "🌱", "💡"},
				Fallback: true,
			}
		}

		return ListingCopy{
			Title:       fmt.Sprintf("🌱 %s Energy Available", orDefault(req.EnergyType, "Renewable")),
			Description: fmt.Sprintf("Clean %s energy available for purchase. 🌍", orDefault(req.EnergyType, "renewable")),
			Emojis:      []string{"🌱", "🌍"},
			Error:       "AI service error: " + err.Error(),
		}
	}
	a.record(ctx, kindListing, nil)

	title, description := ParseListingCopy(text)
	listingCopy := ListingCopy{Title: title, Description: description, Emojis: ExtractEmojis(text)}
	if req.PricePerKWh > 0 {
		price := req.PricePerKWh
		listingCopy.SuggestedPrice = &price
	}

	return listingCopy
}

func (a *Advisor) complete(
	ctx context.Context,
	system, prompt string,
	maxTokens int,
	temperature float32,
) (string, error) {
	if a.client == nil {
		return "", ErrUnavailable
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func (a *Advisor) record(ctx context.Context, kind string, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeFallback
		a.log.WarnContext(ctx, "AI request answered with fallback text", "kind", kind, "error", err)
	}

	a.metrics.AdvisorRequests.WithLabelValues(kind, outcome).Inc()
}

// isHighDemand reports whether the failure should be answered with the generic high demand text.
func isHighDemand(err error) bool {
	return errors.Is(err, ErrUnavailable) || strings.Contains(strings.ToLower(err.Error()), "quota")
}

// CarbonSavings estimates the monthly CO2 saving, in kg, of the given monthly usage.
func CarbonSavings(monthlyKWh float64) float64 {
	if monthlyKWh <= 0 {
		return 0
	}

	return monthlyKWh * CarbonKgPerKWh
}

// ExtractEmojis returns the distinct emoji sequences of text in order of appearance.
func ExtractEmojis(text string) []string {
	emojis := make([]string, 0)
	seen := make(map[string]struct{})
	for _, match := range emojiPattern.FindAllString(text, -1) {
		if _, ok := seen[match]; ok {
			continue
		}
		seen[match] = struct{}{}
		emojis = append(emojis, match)
	}

	return emojis
}

// ParseListingCopy extracts the TITLE: and DESCRIPTION: parts of a generated listing.
// Parts may be on separate lines or separated by "|". Missing parts get default text.
func ParseListingCopy(text string) (string, string) {
	title, description := defaultListingTitle, defaultListingDescription

	for _, line := range strings.Split(text, "\n") {
		for _, part := range strings.Split(line, "|") {
			part = strings.TrimSpace(part)
			switch {
			case strings.HasPrefix(part, "TITLE:"):
				if value := strings.TrimSpace(strings.TrimPrefix(part, "TITLE:")); value != "" {
					title = value
				}
			case strings.HasPrefix(part, "DESCRIPTION:"):
				if value := strings.TrimSpace(strings.TrimPrefix(part, "DESCRIPTION:")); value != "" {
					description = value
				}
			}
		}
	}

	return title, description
}
